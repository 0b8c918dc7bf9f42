package game

// Words is the prompt pool. Prompt resampling on round advance requires at
// least two entries; config.Validate enforces that at startup.
var Words = []string{
	"Apple",
	"Apricot",
	"Artichoke",
	"Avocado",
	"Banana",
	"Beet",
	"Bell pepper",
	"Blackberry",
	"Blueberry",
	"Broccoli",
	"Brussels sprouts",
	"Cabbage",
	"Carrot",
	"Cauliflower",
	"Cherry",
	"Corn",
	"Cucumber",
	"Eggplant",
	"Fennel",
	"Garlic",
	"Grapefruit",
	"Grapes",
	"Honeydew melon",
	"Kale",
	"Kiwi",
	"Leek",
	"Lemon",
	"Lettuce",
	"Mango",
	"Mandarin",
	"Nectarine",
	"Onion",
	"Orange",
	"Papaya",
	"Parsnip",
	"Peach",
	"Pear",
	"Peas",
	"Pineapple",
	"Plum",
	"Pomegranate",
	"Potato",
	"Pumpkin",
	"Raisins",
	"Radish",
	"Raspberry",
	"Rhubarb",
	"Spinach",
	"Squash",
	"Strawberry",
	"Sweet potato",
	"Tomato",
	"Turnip",
	"Watermelon",
}
