package hrir_test

import (
	"fmt"

	"github.com/cwbudde/algo-hrir/dsp/spatial/hrir"
)

func ExampleClassify() {
	for _, az := range []float64{0, 30, -100, 170, -170, 405} {
		d, _ := hrir.Classify(az)
		fmt.Printf("%v -> %s\n", az, d)
	}
	// Output:
	// 0 -> front
	// 30 -> front-left-45
	// -100 -> right
	// 170 -> rear
	// -170 -> rear
	// 405 -> front-left-45
}

func ExampleForAzimuth() {
	pair := hrir.ForAzimuth(95)
	fmt.Println(pair == hrir.Default().Pair(hrir.Left))
	fmt.Println(len(pair.Left), len(pair.Right))
	// Output:
	// true
	// 256 256
}

func ExampleNormalizeAzimuth() {
	fmt.Println(hrir.NormalizeAzimuth(-180), hrir.NormalizeAzimuth(270), hrir.NormalizeAzimuth(-405))
	// Output: 180 -90 -45
}
