// Package testutil generates Pima-shaped fixtures for tests.
package testutil

import (
	"bytes"
	"fmt"
	"math/rand"
)

// PimaRows is the row count of the reference dataset.
const PimaRows = 768

// PimaCSV returns n header-less rows of 9 comma-separated columns laid out
// like the Pima Indians Diabetes data: 8 numeric features then a 0/1 outcome.
// The content depends only on n and seed.
func PimaCSV(n int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	var buf bytes.Buffer
	for i := 0; i < n; i++ {
		outcome := 0
		if i%3 == 0 {
			outcome = 1
		}
		fmt.Fprintf(&buf, "%d,%d,%d,%d,%d,%.1f,%.3f,%d,%d\n",
			rng.Intn(17),          // Pregnancies
			44+rng.Intn(156),      // Glucose
			24+rng.Intn(98),       // BloodPressure
			rng.Intn(100),         // SkinThickness
			rng.Intn(846),         // Insulin
			18+rng.Float64()*49,   // BMI
			0.078+rng.Float64()*2, // DiabetesPedigreeFunction
			21+rng.Intn(60),       // Age
			outcome,
		)
	}
	return buf.Bytes()
}

// Columns returns n header-less rows of width columns, every cell an integer.
func Columns(n, width int) []byte {
	var buf bytes.Buffer
	for i := 0; i < n; i++ {
		for j := 0; j < width; j++ {
			if j > 0 {
				buf.WriteByte(',')
			}
			fmt.Fprintf(&buf, "%d", i*width+j)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
