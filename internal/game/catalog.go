package game

type ItemType string

const (
	ItemHat        ItemType = "hat"
	ItemBackground ItemType = "background"
	ItemToy        ItemType = "toy"
	ItemSkin       ItemType = "skin"
	ItemAccessory  ItemType = "accessory"
)

// ShopItem is immutable catalog data. Ownership is derived from the ledger
// inventory on read, never stored here, so the two cannot drift apart.
type ShopItem struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Price int      `json:"price"`
	Type  ItemType `json:"type"`
	Emoji string   `json:"emoji"`
	Image string   `json:"image,omitempty"`
	Data  string   `json:"data,omitempty"`
}

// AppliedValue is what equipping the item writes into the pet's cosmetic
// slot: the data payload when present, otherwise the emoji.
func (i ShopItem) AppliedValue() string {
	if i.Data != "" {
		return i.Data
	}
	return i.Emoji
}

const assetBase = "https://raw.githubusercontent.com/Tarikul-Islam-Anik/Animated-Fluent-Emojis/master/Emojis"

// PetAssets maps each stage to its display asset.
var PetAssets = map[PetStage]string{
	StageEgg:    assetBase + "/Food/Egg.png",
	StageBaby:   assetBase + "/Smilies/Alien%20Monster.png",
	StageChild:  assetBase + "/Smilies/Goblin.png",
	StageTeen:   assetBase + "/Smilies/Ogre.png",
	StageAdult:  assetBase + "/Animals/Dragon.png",
	StageMythic: assetBase + "/Animals/T-Rex.png",
}

// StarterCatalog returns the immutable starter shop. Skin data strings are
// display filters applied to the pet asset by the rendering layer.
func StarterCatalog() []ShopItem {
	return []ShopItem{
		{ID: "hat_cap", Name: "Blue Cap", Price: 50, Type: ItemHat, Emoji: "🧢",
			Image: assetBase + "/Objects/Billed%20Cap.png", Data: assetBase + "/Objects/Billed%20Cap.png"},
		{ID: "hat_crown", Name: "Gold Crown", Price: 500, Type: ItemHat, Emoji: "👑",
			Image: assetBase + "/Objects/Crown.png", Data: assetBase + "/Objects/Crown.png"},
		{ID: "hat_glasses", Name: "Cool Shades", Price: 150, Type: ItemHat, Emoji: "🕶️",
			Image: assetBase + "/Objects/Sunglasses.png", Data: assetBase + "/Objects/Sunglasses.png"},
		{ID: "hat_top", Name: "Top Hat", Price: 200, Type: ItemHat, Emoji: "🎩",
			Image: assetBase + "/Objects/Top%20Hat.png", Data: assetBase + "/Objects/Top%20Hat.png"},

		{ID: "acc_bow", Name: "Pink Bow", Price: 60, Type: ItemAccessory, Emoji: "🎀",
			Image: assetBase + "/Objects/Ribbon.png", Data: assetBase + "/Objects/Ribbon.png"},
		{ID: "acc_medal", Name: "Gold Medal", Price: 100, Type: ItemAccessory, Emoji: "🥇",
			Image: assetBase + "/Activities/Military%20Medal.png", Data: assetBase + "/Activities/Military%20Medal.png"},

		{ID: "skin_ghost", Name: "Ghostly", Price: 250, Type: ItemSkin, Emoji: "👻",
			Data: "grayscale(100%) opacity(0.7)"},
		{ID: "skin_hulk", Name: "Radioactive", Price: 150, Type: ItemSkin, Emoji: "🧪",
			Data: "hue-rotate(90deg) saturate(200%)"},
		{ID: "skin_ocean", Name: "Deep Blue", Price: 150, Type: ItemSkin, Emoji: "🌊",
			Data: "hue-rotate(180deg) brightness(1.1)"},
		{ID: "skin_gold", Name: "Midas Touch", Price: 1000, Type: ItemSkin, Emoji: "✨",
			Data: "sepia(100%) saturate(300%) hue-rotate(320deg)"},

		{ID: "bg_forest", Name: "Forest", Price: 100, Type: ItemBackground, Emoji: "🌲"},
		{ID: "bg_city", Name: "City", Price: 150, Type: ItemBackground, Emoji: "🏙️"},
		{ID: "bg_space", Name: "Space", Price: 1000, Type: ItemBackground, Emoji: "🌌"},

		{ID: "toy_ball", Name: "Soccer Ball", Price: 75, Type: ItemToy, Emoji: "⚽",
			Image: assetBase + "/Activities/Soccer%20Ball.png"},
	}
}

// MigrateCatalog reconciles a loaded catalog snapshot against the starter
// catalog: starter items missing from the snapshot are appended, and
// image/data fields of known items are refreshed from the starter data
// without touching ownership or price history.
func MigrateCatalog(loaded []ShopItem) []ShopItem {
	starter := StarterCatalog()
	fresh := make(map[string]ShopItem, len(starter))
	for _, item := range starter {
		fresh[item.ID] = item
	}

	seen := make(map[string]bool, len(loaded))
	out := make([]ShopItem, 0, len(starter))
	for _, item := range loaded {
		if f, ok := fresh[item.ID]; ok {
			item.Image = f.Image
			item.Data = f.Data
		}
		seen[item.ID] = true
		out = append(out, item)
	}
	for _, item := range starter {
		if !seen[item.ID] {
			out = append(out, item)
		}
	}
	return out
}
