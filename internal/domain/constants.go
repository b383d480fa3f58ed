package domain

// Filter sentinels. A query parameter equal to one of these means "no filter".
const (
	AllSeasons    = "All Seasons"
	AnyWeather    = "Any Weather"
	AnyLocation   = "Any Location"
	AllRooms      = "All Rooms"
	AllCategories = "All"
)

// Seasons in calendar order. Multi-season crops store a combined string such as
// "Spring, Summer", which is why season filters match by containment.
const (
	SeasonSpring = "Spring"
	SeasonSummer = "Summer"
	SeasonFall   = "Fall"
	SeasonWinter = "Winter"
)

// Seasons lists the four seasons in calendar order
var Seasons = []string{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

// Defaults applied to fish records that arrive without the field set
const (
	DefaultFishSeason   = "All"
	DefaultFishWeather  = "Any"
	DefaultFishLocation = "Ocean"
	DefaultFishTime     = "Any"
)

// Entity names used in logs, metrics labels and error payloads
const (
	EntityCrop           = "crops"
	EntityFish           = "fish"
	EntityNPC            = "npcs"
	EntityRecipe         = "recipes"
	EntityMiningLocation = "mining locations"
	EntityBundle         = "bundles"
)
