package discord

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ValleyCompanion_Go/internal/client"
)

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, c *client.APIClient)

// CommandFactory creates a command definition and its handler
type CommandFactory func() (*discordgo.ApplicationCommand, CommandHandler)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// RegisterAll registers every factory's command
func (r *CommandRegistry) RegisterAll(factories ...CommandFactory) {
	for _, factory := range factories {
		r.Register(factory())
	}
}

// Names returns the registered command names in alphabetical order
func (r *CommandRegistry) Names() []string {
	names := make([]string, 0, len(r.Commands))
	for name := range r.Commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Handle dispatches an interaction to its command handler
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, c *client.APIClient) {
	name := i.ApplicationCommandData().Name
	h, ok := r.Handlers[name]
	if !ok {
		slog.Warn("Unknown command", "command", name)
		return
	}
	RecordCommand()
	h(s, i, c)
}

// DefaultCommands lists every command the bot serves
func DefaultCommands() []CommandFactory {
	return []CommandFactory{
		PingCommand,
		CropsCommand,
		FishCommand,
		GiftsCommand,
		BundlesCommand,
		SearchCommand,
	}
}

// RegisterCommands registers the commands with Discord.
// Only performs updates if commands have changed to avoid rate limits.
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	slog.Info("Checking Discord commands...")

	existingCmds, err := b.Session.ApplicationCommands(b.AppID, "")
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	desiredCmds := make([]*discordgo.ApplicationCommand, 0, len(registry.Commands))
	for _, name := range registry.Names() {
		desiredCmds = append(desiredCmds, registry.Commands[name])
	}

	if !forceUpdate && commandsEqual(existingCmds, desiredCmds) {
		slog.Info("Commands unchanged, skipping registration", "count", len(existingCmds))
		return nil
	}

	slog.Info("Updating commands",
		"existing", len(existingCmds),
		"desired", len(desiredCmds),
		"forced", forceUpdate)

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desiredCmds); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	slog.Info("Commands updated successfully", "count", len(desiredCmds))
	return nil
}

// commandsEqual checks if two command sets are equivalent, ignoring order
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, d := range desired {
		e, ok := existingMap[d.Name]
		if !ok || !commandEqual(e, d) {
			return false
		}
	}
	return true
}

func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}
	if len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if !optionEqual(a.Options[i], b.Options[i]) {
			return false
		}
	}
	return true
}

func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description || a.Required != b.Required {
		return false
	}
	if len(a.Choices) != len(b.Choices) {
		return false
	}
	for i := range a.Choices {
		// Values come back from Discord as JSON, so compare their printed form
		if a.Choices[i].Name != b.Choices[i].Name ||
			fmt.Sprint(a.Choices[i].Value) != fmt.Sprint(b.Choices[i].Value) {
			return false
		}
	}
	return true
}
