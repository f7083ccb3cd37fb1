// Copyright 2012 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package interp_test

import (
	"fmt"
	"math"

	"github.com/loxspace/lox/interp"
)

func ExampleLen3Interpolate() {
	// Example 3.a, p. 25.
	yTable := []float64{.884226, .877366, .870531}
	x := 8 + (4+21./60)/24 // 8th day at 4:21
	y, err := interp.Len3Interpolate(x, 7, 9, yTable, false)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.6f\n", y)
	// Output:
	// 0.876125
}

func ExampleLen3Extremum() {
	// Example 3.b, p. 26.
	yTable := []float64{1.3814294, 1.3812213, 1.3812453}
	x, y, err := interp.Len3Extremum(12, 20, yTable)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("distance: %.7f AU\n", y)
	fmt.Printf("date:     %.4f\n", x)
	i, frac := math.Modf(x)
	fmt.Printf("1992 May %d, at %.2fh TD\n", int(i), frac*24)
	// Output:
	// distance: 1.3812030 AU
	// date:     17.5864
	// 1992 May 17, at 14.07h TD
}

func ExampleLen3Zero() {
	// Example 3.c, p. 26. yTable in degrees, DMS converted by hand.
	yTable := []float64{
		-(0 + 28./60 + 13.4/3600),
		0 + 6./60 + 46.3/3600,
		0 + 38./60 + 23.2/3600,
	}
	x, err := interp.Len3Zero(26, 28, yTable, false)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("February %.5f\n", x)
	i, frac := math.Modf(x)
	fmt.Printf("February %d, at %.2fh TD\n", int(i), frac*24)
	// Output:
	// February 26.79873
	// February 26, at 19.17h TD
}

func ExampleLen3Zero_strong() {
	// Example 3.d, p. 27.
	yTable := []float64{-2, 3, 2}
	x, err := interp.Len3Zero(-1, 1, yTable, true)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.12f\n", x)
	// Output:
	// -0.720759220056
}
