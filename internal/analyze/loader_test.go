package analyze

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"struct-reflection/reflection"
)

const fixturesPkg = "struct-reflection/fixtures"

func loadFixtures(t *testing.T) *Analyzer {
	t.Helper()

	analyzer := NewAnalyzer()
	require.NoError(t, analyzer.LoadPackages(fixturesPkg))

	return analyzer
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer := loadFixtures(t)

	pkg := analyzer.Package(fixturesPkg)
	require.NotNil(t, pkg)
	assert.Equal(t, "fixtures", pkg.Name)
	assert.NotEmpty(t, pkg.Dir)
	assert.NotNil(t, pkg.Types)

	assert.Nil(t, analyzer.Package("struct-reflection/missing"))
}

func TestAnalyzer_LoadPackages_Error(t *testing.T) {
	analyzer := NewAnalyzer()
	err := analyzer.LoadPackages("struct-reflection/does/not/exist")
	assert.Error(t, err)
}

func TestAnalyzer_LoadPackage(t *testing.T) {
	analyzer := NewAnalyzer()
	analyzer.Dir = "../.."

	pkg, err := analyzer.LoadPackage("./fixtures")
	require.NoError(t, err)
	assert.Equal(t, fixturesPkg, pkg.Path)
	assert.Same(t, pkg, analyzer.Package(fixturesPkg))

	_, err = analyzer.LoadPackage("./internal/...")
	require.Error(t, err)
}

func TestAnalyzer_LookupStruct(t *testing.T) {
	analyzer := loadFixtures(t)

	named, err := analyzer.LookupStruct(TypeID{PkgPath: fixturesPkg, Name: "ChildStruct"})
	require.NoError(t, err)
	assert.Equal(t, "ChildStruct", named.Obj().Name())

	st, ok := named.Underlying().(*types.Struct)
	require.True(t, ok)
	assert.Equal(t, 3, st.NumFields())
	assert.True(t, st.Field(0).Embedded())
}

func TestAnalyzer_LookupStruct_Errors(t *testing.T) {
	analyzer := loadFixtures(t)

	_, err := analyzer.LookupStruct(TypeID{PkgPath: fixturesPkg, Name: "Missing"})
	require.ErrorIs(t, err, ErrTypeNotFound)

	_, err = analyzer.LookupStruct(TypeID{PkgPath: fixturesPkg, Name: "ChildStrcut"})
	require.ErrorIs(t, err, ErrTypeNotFound)
	assert.Contains(t, err.Error(), "did you mean ChildStruct?")

	_, err = analyzer.LookupStruct(TypeID{PkgPath: fixturesPkg, Name: "NotAStruct"})
	require.ErrorIs(t, err, reflection.ErrNotStruct)

	_, err = analyzer.LookupStruct(TypeID{PkgPath: fixturesPkg, Name: "NewMockNonAggregate"})
	require.ErrorIs(t, err, ErrTypeNotFound)

	_, err = analyzer.LookupStruct(TypeID{PkgPath: "struct-reflection/other", Name: "X"})
	require.ErrorIs(t, err, ErrTypeNotFound)
}

func TestTypeID_String(t *testing.T) {
	id := TypeID{PkgPath: fixturesPkg, Name: "ChildStruct"}
	assert.Equal(t, "struct-reflection/fixtures.ChildStruct", id.String())

	// Empty package path
	idNoPkg := TypeID{Name: "int"}
	assert.Equal(t, "int", idNoPkg.String())
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "basic", TypeKindBasic.String())
	assert.Equal(t, "struct", TypeKindStruct.String())
	assert.Equal(t, "opaque", TypeKindOpaque.String())
	assert.Equal(t, "pointer", TypeKindPointer.String())
	assert.Equal(t, "slice", TypeKindSlice.String())
	assert.Equal(t, "array", TypeKindArray.String())
	assert.Equal(t, "map", TypeKindMap.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}

func TestClassify(t *testing.T) {
	analyzer := loadFixtures(t)

	named, err := analyzer.LookupStruct(TypeID{PkgPath: fixturesPkg, Name: "StructWithLeaves"})
	require.NoError(t, err)

	st := named.Underlying().(*types.Struct)
	kinds := make(map[string]TypeKind)
	for i := range st.NumFields() {
		kinds[st.Field(i).Name()] = Classify(st.Field(i).Type())
	}

	assert.Equal(t, map[string]TypeKind{
		"At":     TypeKindOpaque,
		"Ptr":    TypeKindPointer,
		"Items":  TypeKindSlice,
		"ByName": TypeKindMap,
		"Blob":   TypeKindArray,
	}, kinds)

	assert.True(t, IsAggregate(named))
	assert.Equal(t, TypeKindBasic, Classify(types.Typ[types.Int]))
}
