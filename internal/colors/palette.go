package colors

// Default is the reference palette. Families are grouped; within a family the more
// common name comes first so it wins exact ties (Cyan before Aqua, Magenta before Fuchsia).
var Default = Palette{
	// reds
	{Name: "Red", RGB: RGB{255, 0, 0}},
	{Name: "Dark Red", RGB: RGB{139, 0, 0}},
	{Name: "Crimson", RGB: RGB{220, 20, 60}},
	{Name: "Maroon", RGB: RGB{128, 0, 0}},
	{Name: "Salmon", RGB: RGB{250, 128, 114}},
	{Name: "Coral", RGB: RGB{255, 127, 80}},
	{Name: "Tomato", RGB: RGB{255, 99, 71}},
	// oranges
	{Name: "Orange", RGB: RGB{255, 165, 0}},
	{Name: "Dark Orange", RGB: RGB{255, 140, 0}},
	{Name: "Orange Red", RGB: RGB{255, 69, 0}},
	{Name: "Peach", RGB: RGB{255, 218, 185}},
	// yellows
	{Name: "Yellow", RGB: RGB{255, 255, 0}},
	{Name: "Gold", RGB: RGB{255, 215, 0}},
	{Name: "Lemon", RGB: RGB{255, 247, 0}},
	{Name: "Khaki", RGB: RGB{240, 230, 140}},
	{Name: "Beige", RGB: RGB{245, 245, 220}},
	// greens
	{Name: "Green", RGB: RGB{0, 255, 0}},
	{Name: "Lime", RGB: RGB{50, 205, 50}},
	{Name: "Dark Green", RGB: RGB{0, 100, 0}},
	{Name: "Forest Green", RGB: RGB{34, 139, 34}},
	{Name: "Olive", RGB: RGB{128, 128, 0}},
	{Name: "Sea Green", RGB: RGB{46, 139, 87}},
	{Name: "Spring Green", RGB: RGB{0, 255, 127}},
	{Name: "Mint", RGB: RGB{152, 255, 152}},
	// cyans / turquoise
	{Name: "Cyan", RGB: RGB{0, 255, 255}},
	{Name: "Aqua", RGB: RGB{0, 255, 255}},
	{Name: "Turquoise", RGB: RGB{64, 224, 208}},
	{Name: "Teal", RGB: RGB{0, 128, 128}},
	{Name: "Dark Cyan", RGB: RGB{0, 139, 139}},
	{Name: "Aquamarine", RGB: RGB{127, 255, 212}},
	{Name: "Light Cyan", RGB: RGB{224, 255, 255}},
	// blues
	{Name: "Blue", RGB: RGB{0, 0, 255}},
	{Name: "Navy", RGB: RGB{0, 0, 128}},
	{Name: "Royal Blue", RGB: RGB{65, 105, 225}},
	{Name: "Sky Blue", RGB: RGB{135, 206, 235}},
	{Name: "Light Blue", RGB: RGB{173, 216, 230}},
	{Name: "Steel Blue", RGB: RGB{70, 130, 180}},
	{Name: "Dodger Blue", RGB: RGB{30, 144, 255}},
	{Name: "Deep Sky Blue", RGB: RGB{0, 191, 255}},
	{Name: "Midnight Blue", RGB: RGB{25, 25, 112}},
	// purples / violets
	{Name: "Purple", RGB: RGB{128, 0, 128}},
	{Name: "Violet", RGB: RGB{238, 130, 238}},
	{Name: "Indigo", RGB: RGB{75, 0, 130}},
	{Name: "Lavender", RGB: RGB{230, 230, 250}},
	{Name: "Plum", RGB: RGB{221, 160, 221}},
	{Name: "Orchid", RGB: RGB{218, 112, 214}},
	{Name: "Magenta", RGB: RGB{255, 0, 255}},
	{Name: "Fuchsia", RGB: RGB{255, 0, 255}},
	{Name: "Dark Violet", RGB: RGB{148, 0, 211}},
	{Name: "Blue Violet", RGB: RGB{138, 43, 226}},
	{Name: "Medium Purple", RGB: RGB{147, 112, 219}},
	// pinks
	{Name: "Pink", RGB: RGB{255, 192, 203}},
	{Name: "Hot Pink", RGB: RGB{255, 105, 180}},
	{Name: "Deep Pink", RGB: RGB{255, 20, 147}},
	{Name: "Light Pink", RGB: RGB{255, 182, 193}},
	{Name: "Rose", RGB: RGB{255, 0, 127}},
	// browns / tans
	{Name: "Brown", RGB: RGB{139, 69, 19}},
	{Name: "Chocolate", RGB: RGB{210, 105, 30}},
	{Name: "Tan", RGB: RGB{210, 180, 140}},
	{Name: "Sienna", RGB: RGB{160, 82, 45}},
	{Name: "Sandy Brown", RGB: RGB{244, 164, 96}},
	{Name: "Peru", RGB: RGB{205, 133, 63}},
	{Name: "Saddle Brown", RGB: RGB{139, 69, 19}},
	// whites / grays / blacks
	{Name: "White", RGB: RGB{255, 255, 255}},
	{Name: "Snow", RGB: RGB{255, 250, 250}},
	{Name: "Ivory", RGB: RGB{255, 255, 240}},
	{Name: "Light Gray", RGB: RGB{211, 211, 211}},
	{Name: "Silver", RGB: RGB{192, 192, 192}},
	{Name: "Gray", RGB: RGB{128, 128, 128}},
	{Name: "Dark Gray", RGB: RGB{64, 64, 64}},
	{Name: "Charcoal", RGB: RGB{54, 69, 79}},
	{Name: "Black", RGB: RGB{0, 0, 0}},
	{Name: "Slate Gray", RGB: RGB{112, 128, 144}},
}
