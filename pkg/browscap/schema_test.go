package browscap_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/browscap/pkg/browscap"
)

func TestParseVariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want browscap.Variant
	}{
		{"LITE", browscap.VariantLite},
		{"FULL", browscap.VariantFull},
		{"", browscap.VariantRegular},
		{"lite", browscap.VariantRegular},
		{"Full", browscap.VariantRegular},
		{"LITE ", browscap.VariantRegular},
		{"STANDARD", browscap.VariantRegular},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, browscap.ParseVariant(tc.in))
		})
	}
}

func TestSchemaFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		variant           browscap.Variant
		strs, ints, bools int
		name              string
	}{
		{browscap.VariantLite, 5, 0, 2, "lite"},
		{browscap.VariantRegular, 6, 2, 3, "regular"},
		{browscap.VariantFull, 20, 6, 21, "full"},
		{browscap.Variant(42), 6, 2, 3, "regular"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := browscap.SchemaFor(tc.variant)
			strs, ints, bools := s.Counts()
			assert.Equal(t, tc.strs, strs)
			assert.Equal(t, tc.ints, ints)
			assert.Equal(t, tc.bools, bools)
			assert.Equal(t, tc.name, s.Variant().String())
		})
	}
}

func TestSchema_Nesting(t *testing.T) {
	t.Parallel()

	lite := browscap.SchemaFor(browscap.VariantLite)
	regular := browscap.SchemaFor(browscap.VariantRegular)
	full := browscap.SchemaFor(browscap.VariantFull)

	pairs := [][2]browscap.Schema{{lite, regular}, {regular, full}}
	for _, p := range pairs {
		small, big := p[0], p[1]
		assert.Equal(t, small.StringProperties(), big.StringProperties()[:len(small.StringProperties())])
		assert.Equal(t, small.IntProperties(), big.IntProperties()[:len(small.IntProperties())])
		assert.Equal(t, small.BoolProperties(), big.BoolProperties()[:len(small.BoolProperties())])
	}

	assert.Equal(t, []string{"Comment", "Browser", "Version", "Platform", "Device_Type"}, lite.StringProperties())
	assert.Equal(t, []string{"MajorVer", "MinorVer"}, regular.IntProperties())
	assert.Equal(t, []string{"isMobileDevice", "isTablet", "Crawler"}, regular.BoolProperties())
}

func TestSchema_ReturnsCopies(t *testing.T) {
	t.Parallel()

	s := browscap.SchemaFor(browscap.VariantFull)
	names := s.StringProperties()
	names[0] = "Mutated"

	assert.Equal(t, "Comment", s.StringProperties()[0])
	assert.Equal(t, "Comment", browscap.SchemaFor(browscap.VariantLite).StringProperties()[0])
}

func TestDetectVariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ini      string
		want     browscap.Variant
		declared bool
	}{
		{"lite", "[GJK_Browscap_Version]\nType=LITE\n", browscap.VariantLite, true},
		{"full", "[GJK_Browscap_Version]\nType=FULL\n", browscap.VariantFull, true},
		{"empty type", "[GJK_Browscap_Version]\nType=\n", browscap.VariantRegular, true},
		{"no type key", "[GJK_Browscap_Version]\nVersion=1\n", browscap.VariantRegular, false},
		{"no version section", "[Other]\nType=FULL\n", browscap.VariantRegular, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			src, err := browscap.NewINISource(strings.NewReader(tc.ini))
			require.NoError(t, err)

			got, declared := browscap.DetectVariant(src)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.declared, declared)

			// Independent of anything queried afterwards.
			db, err := browscap.New(src)
			require.NoError(t, err)
			_, err = db.Search("Type")
			require.NoError(t, err)
			assert.Equal(t, tc.want, db.Variant())
		})
	}
}
