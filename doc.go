// Package lvlp is a small linear-programming toolkit: it maximizes the value
// of a production plan under resource limits with the tableau simplex method.
//
// 🚀 What is inside?
//
//	matrix/     row-major Dense storage, row operations and the Gauss-Jordan pivot
//	problem/    named coefficient tables: ';'-separated loader, writer, built-in dataset
//	simplex/    the solver: tableau layout, Dantzig and Bland pivot rules,
//	            iteration cap, time limit, results and report
//	cmd/lvlp/   command line: `lvlp solve`, `lvlp dataset`
//
// Quick example:
//
//	s, err := simplex.New([]float64{20, 16, 12, 8}, []float64{10, 12, 15, 8, 9}, problem.Default())
//	if err != nil {
//	  log.Fatal(err)
//	}
//	if err = s.Solve(); err != nil {
//	  log.Fatal(err)
//	}
//	fmt.Print(s) // oatmeal: 2.67 units at 10 /unit ... total production value: 146.67
//
// Runnable scenarios live in examples/.
//
//	go install github.com/katalvlaran/lvlp/cmd/lvlp@latest
package lvlp
