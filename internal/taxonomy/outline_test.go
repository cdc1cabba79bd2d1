package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOutline(t *testing.T) {
	text := "Natural Fibers\r\n-Cotton\n- Linen  \n\n   \nSynthetic Fibers\n-Nylon\n--Nylon 6\n--<i>Nylon 66</i>\n-"

	want := []OutlineEntry{
		{0, "Natural Fibers"},
		{1, "Cotton"},
		{1, "Linen"},
		{0, "Synthetic Fibers"},
		{1, "Nylon"},
		{2, "Nylon 6"},
		{2, "Nylon 66"},
		{0, "-"},
	}
	assert.Equal(t, want, ParseOutline(text))
}

func TestParseOutline_Empty(t *testing.T) {
	assert.Empty(t, ParseOutline(""))
	assert.Empty(t, ParseOutline("\n\n  \n"))
	assert.Empty(t, ParseOutline("-<br>"))
}

func TestOutlineEntry_DisplayName(t *testing.T) {
	assert.Equal(t, "Cotton", OutlineEntry{0, "Cotton"}.DisplayName())
	assert.Equal(t, "    Nylon 6", OutlineEntry{2, "Nylon 6"}.DisplayName())
}
