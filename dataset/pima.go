// Package dataset loads the Pima Indians Diabetes table and maps its rows to
// records.
//
// A Table is loaded from a Source (URL, file or an in-memory table) against an
// ordered column-name list; the column count is validated before names are
// assigned, so a Table returned without error always carries the expected
// schema. Records wrap single rows and recode the numeric outcome label into
// a categorical one.
package dataset

import "time"

// DefaultURL is the public CSV the dataset is fetched from.
const DefaultURL = "https://raw.githubusercontent.com/jbrownlee/Datasets/master/pima-indians-diabetes.data.csv"

// DefaultTimeout bounds a single fetch of a URLSource.
const DefaultTimeout = 30 * time.Second

// TargetColumn is the label column of the dataset.
const TargetColumn = "Outcome"

// Categorical labels for the recoded outcome.
const (
	DiabeticLabel    = "Diabetic"
	NonDiabeticLabel = "Non-diabetic"
)

// ColumnNames returns the nine column names of the dataset, target last.
// A fresh slice is returned on every call.
func ColumnNames() []string {
	return []string{
		"Pregnancies",
		"Glucose",
		"BloodPressure",
		"SkinThickness",
		"Insulin",
		"BMI",
		"DiabetesPedigreeFunction",
		"Age",
		TargetColumn,
	}
}
