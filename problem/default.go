package problem

// Built-in dataset: five feed products and four nutrient resources.
var (
	defaultProducts  = []string{"oatmeal", "wheat", "corn", "barley", "soy"}
	defaultResources = []Resource{
		{Name: "F1", Values: []float64{1, 0, 1, 0, 2}},
		{Name: "F2", Values: []float64{1, 2, 0, 1, 0}},
		{Name: "F3", Values: []float64{2, 1, 0, 1, 0}},
		{Name: "F4", Values: []float64{0, 0, 3, 1, 2}},
	}
)

// Default returns the built-in table used when no data file is given.
// Each call returns a fresh Table.
func Default() *Table {
	t, err := New(defaultProducts, defaultResources)
	if err != nil {
		// the literal above is valid; reaching here means it was edited badly
		panic("problem: invalid default dataset: " + err.Error())
	}

	return t
}
