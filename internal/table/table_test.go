package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema(t *testing.T) Schema {
	t.Helper()
	s, err := NewSchema(Field{Name: "age", Kind: Numeric}, Field{Name: "workclass", Kind: Categorical})
	require.NoError(t, err)
	return s
}

func TestNewSchema_Rejects(t *testing.T) {
	_, err := NewSchema(Field{Name: "a"}, Field{Name: "a"})
	assert.Error(t, err)

	_, err = NewSchema(Field{Name: ""})
	assert.Error(t, err)
}

func TestTable_AppendRowAndAccess(t *testing.T) {
	tbl := New(testSchema(t))
	require.NoError(t, tbl.AppendRow([]Value{Number(25), Text("Private")}))
	require.NoError(t, tbl.AppendRow([]Value{Number(38), Missing()}))

	assert.Error(t, tbl.AppendRow([]Value{Number(1)}))
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"age", "workclass"}, tbl.Columns())
	assert.Equal(t, 1, tbl.CountMissing("workclass"))
	assert.Equal(t, 0, tbl.CountMissing("age"))
	assert.Equal(t, 0, tbl.CountMissing("nope"))

	v, ok := tbl.Cell(0, "workclass")
	require.True(t, ok)
	assert.Equal(t, "Private", v.String())

	_, ok = tbl.Cell(5, "age")
	assert.False(t, ok)
}

func TestTable_CloneIsIndependent(t *testing.T) {
	tbl := New(testSchema(t))
	require.NoError(t, tbl.AppendRow([]Value{Number(38), Missing()}))

	c := tbl.Clone()
	require.True(t, tbl.Equal(c))

	require.NoError(t, c.Set(0, "workclass", Text("Private")))
	assert.False(t, tbl.Equal(c))
	assert.Equal(t, 1, tbl.CountMissing("workclass"))
	assert.Equal(t, 0, c.CountMissing("workclass"))

	col, _ := c.Column("workclass")
	col[0] = Text("Changed")
	v, _ := c.Cell(0, "workclass")
	assert.Equal(t, "Private", v.String())
}

func TestTable_SetErrors(t *testing.T) {
	tbl := New(testSchema(t))
	require.NoError(t, tbl.AppendRow([]Value{Number(38), Missing()}))

	assert.Error(t, tbl.Set(0, "unknown", Text("x")))
	assert.Error(t, tbl.Set(1, "age", Number(1)))
}

func TestTable_Records(t *testing.T) {
	tbl := New(testSchema(t))
	require.NoError(t, tbl.AppendRow([]Value{Number(25), Text("Private")}))
	require.NoError(t, tbl.AppendRow([]Value{Number(38.5), Missing()}))

	assert.Equal(t, [][]string{{"25", "Private"}, {"38.5", "?"}}, tbl.Records("?"))
}

func TestValue_Less(t *testing.T) {
	assert.True(t, Number(9).Less(Number(10)))
	assert.False(t, Text("9").Less(Text("10")))
	assert.True(t, Text("Clerical").Less(Text("Private")))
	assert.True(t, Number(100).Less(Text("0")))
	assert.False(t, Number(3).Less(Number(3)))
}

func TestValue_Missing(t *testing.T) {
	assert.True(t, Missing().IsMissing())
	assert.False(t, Text("").IsMissing())
	assert.Equal(t, "", Missing().String())
	assert.True(t, Number(2).IsNumeric())
	assert.Equal(t, 2.0, Number(2).Float())
}
