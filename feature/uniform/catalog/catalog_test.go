package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uniform-manager/feature/uniform/errs"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want Category
	}{
		{"Uniform No 3", UniformNo3},
		{"  uniform   no 3 ", UniformNo3},
		{"Uniform No. 4", UniformNo4},
		{"T-Shirt", Shirt},
		{"T Shirt", Shirt},
		{"TShirt", Shirt},
		{"shirt", Shirt},
		{"Accessories No 4", AccessoriesNo4},
		{"Accessory No 3", AccessoriesNo3},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseCategory(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCategory_Unknown(t *testing.T) {
	_, err := ParseCategory("Cloth No 5")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidation))
	assert.Contains(t, err.Error(), "Uniform No 3")
	assert.Contains(t, err.Error(), "Accessories No 4")

	_, err = ParseCategory("   ")
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestCanonicalType(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"BAJU_NO_3_LELAKI", "Uniform No 3 Male"},
		{"Cloth No 3 Female", "Uniform No 3 Female"},
		{"Trousers No 4", "Uniform No 4"},
		{"BOOT", "Boot"},
		{"beret", "Beret"},
		{"Epaulette", "Apulet"},
		{"name tag", "Nametag"},
		{"Shoulder Tag", "Shoulder Badge"},
		{"  Rain   Coat ", "Rain Coat"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalType(tt.raw))
		})
	}
}

func TestIsAccessory(t *testing.T) {
	tests := []struct {
		typ  string
		want bool
	}{
		{"Apulet", true},
		{"Beret Logo Pin", true},
		{"Beret", false},
		{"Boot", false},
		{"Uniform No 4", false},
		{"Collar Button", true},
		{"Medal Bar", true},
		{"Barrel Bag", false},
		{"Rain Coat", false},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAccessory(tt.typ))
		})
	}
}

func TestCategoryFor(t *testing.T) {
	assert.Equal(t, AccessoriesNo3, CategoryFor("Apulet", UniformNo4))
	assert.Equal(t, AccessoriesNo4, CategoryFor("APM Tag", UniformNo3))
	assert.Equal(t, AccessoriesNo4, CategoryFor("Collar Button", UniformNo4))
	assert.Equal(t, AccessoriesNo3, CategoryFor("Collar Button", UniformNo3))
	assert.Equal(t, AccessoriesNo3, CategoryFor("Collar Button", Shirt))
}

func TestNormalize_ReclassifiesAccessory(t *testing.T) {
	category, typ, err := Normalize("Uniform No 3", "epaulette")
	require.NoError(t, err)
	assert.Equal(t, AccessoriesNo3, category)
	assert.Equal(t, "Apulet", typ)

	category, typ, err = Normalize("Uniform No 3", "Beret")
	require.NoError(t, err)
	assert.Equal(t, UniformNo3, category)
	assert.Equal(t, "Beret", typ)
}

func TestNormalize_MissingType(t *testing.T) {
	_, _, err := Normalize("Uniform No 3", "  ")
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "type", ve.Field)
}

func TestIsCustomOrdered(t *testing.T) {
	assert.True(t, IsCustomOrdered("Nametag"))
	assert.True(t, IsCustomOrdered("Name Tag"))
	assert.True(t, IsCustomOrdered("Name Plate"))
	assert.False(t, IsCustomOrdered("Boot"))
	assert.False(t, TracksStock("Nametag"))
	assert.False(t, TracksStock("Apulet"))
	assert.True(t, TracksStock("Boot"))
}

func TestRequiresSize(t *testing.T) {
	assert.True(t, RequiresSize(UniformNo3, "Boot"))
	assert.True(t, RequiresSize(Shirt, "Digital Shirt"))
	assert.False(t, RequiresSize(AccessoriesNo3, "Apulet"))
	assert.False(t, RequiresSize(AccessoriesNo3, "Name Plate"))
	assert.True(t, RequiresSize(UniformNo4, "Rain Coat"))
}

func TestNormalizeSize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"  n/a ", ""},
		{"undefined", ""},
		{"null", ""},
		{" uk  7 ", "UK 7"},
		{"m", "M"},
		{"2xl", "XXL"},
		{"3XL", "XXXL"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSize(tt.raw))
		})
	}
}

func TestNumericToken(t *testing.T) {
	v, ok := NumericToken("UK 7")
	assert.True(t, ok)
	assert.Equal(t, 7.0, v)

	v, ok = NumericToken("6.5 wide")
	assert.True(t, ok)
	assert.Equal(t, 6.5, v)

	_, ok = NumericToken("XL")
	assert.False(t, ok)
}

func TestDescriptorKeys(t *testing.T) {
	a, err := NormalizeDescriptor("Uniform No 3", "boot", "uk 7")
	require.NoError(t, err)
	b, err := NormalizeDescriptor("uniform no 3", "BOOTS", "UK  7")
	require.NoError(t, err)
	c, err := NormalizeDescriptor("Uniform No 3", "Boot", "8")
	require.NoError(t, err)

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	assert.Equal(t, a.LogicalKey(), c.LogicalKey())
	assert.Equal(t, "Uniform No 3 / Boot / UK 7", a.String())
}

func TestTolerant(t *testing.T) {
	d := Tolerant("Cloth No 5", " Cap ", "m")
	assert.Equal(t, Category("Cloth No 5"), d.Category)
	assert.Equal(t, "Cap", d.Type)
	assert.Equal(t, "M", d.Size)
}
