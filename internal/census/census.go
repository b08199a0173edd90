// Package census describes the fixed column layout of the UCI adult
// census dataset.
package census

import "github.com/alexanderjulianmartinez/censusclean/internal/table"

var fields = []table.Field{
	{Name: "age", Kind: table.Numeric},
	{Name: "workclass", Kind: table.Categorical},
	{Name: "fnlwgt", Kind: table.Numeric},
	{Name: "education", Kind: table.Categorical},
	{Name: "education-num", Kind: table.Numeric},
	{Name: "marital-status", Kind: table.Categorical},
	{Name: "occupation", Kind: table.Categorical},
	{Name: "relationship", Kind: table.Categorical},
	{Name: "race", Kind: table.Categorical},
	{Name: "sex", Kind: table.Categorical},
	{Name: "capital-gain", Kind: table.Numeric},
	{Name: "capital-loss", Kind: table.Numeric},
	{Name: "hours-per-week", Kind: table.Numeric},
	{Name: "native-country", Kind: table.Categorical},
	{Name: "income", Kind: table.Categorical},
}

// Schema returns the 15-column adult schema.
func Schema() table.Schema {
	s, err := table.NewSchema(fields...)
	if err != nil {
		panic("census: invalid built-in schema: " + err.Error())
	}
	return s
}

func Columns() []string {
	return Schema().Names()
}
