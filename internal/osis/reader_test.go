package osis

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

const containerDoc = `<?xml version="1.0" encoding="UTF-8"?>
<osis xmlns="http://www.bibletechnologies.net/2003/OSIS/namespace">
  <osisText osisIDWork="WLC">
    <div type="book" osisID="Gen">
      <chapter osisID="Gen.1">
        <verse osisID="Gen.1.1">
          <w lemma="b/7225" morph="HR/Ncfsa" id="01xeN">בְּ/רֵאשִׁ֖ית</w>
          <w lemma="1254 a" morph="HVqp3ms" id="01Nvk">בָּרָ֣א</w>
          <w lemma="430" morph="HNcmpa" id="01TyA">אֱלֹהִ֑ים</w>
          <w></w>
          <seg type="x-sof-pasuq">׃</seg>
        </verse>
        <verse osisID="Gen.1.2">
          <w lemma="c/1961" morph="HC/Vqp3fs" id="01f9e">וְ/הָאָ֗רֶץ</w>
        </verse>
      </chapter>
    </div>
    <div type="book" osisID="Exod">
      <chapter osisID="Exod.1">
        <verse osisID="Exod.1.1">
          <w morph="HC/Pdxcp">וְ/אֵ֗לֶּה</w>
        </verse>
      </chapter>
    </div>
  </osisText>
</osis>`

func TestReadContainers(t *testing.T) {
	verses, err := Read(strings.NewReader(containerDoc))
	require.NoError(t, err)
	require.Len(t, verses, 3)

	v := verses[0]
	assert.Equal(t, "Gen", v.Book)
	assert.Equal(t, "Gen.1.1", v.ID)
	require.Len(t, v.Words, 3, "empty <w> is skipped")
	assert.Equal(t, Word{ID: "01xeN", Position: 1, Surface: "\u05D1\u05B0\u05BC/\u05E8\u05B5\u05D0\u05E9\u05B4\u05C1\u0596\u05D9\u05EA", Lemma: "b/7225", Morph: "HR/Ncfsa"}, v.Words[0])
	assert.Equal(t, 2, v.Words[1].Position)
	assert.Equal(t, "HNcmpa", v.Words[2].Morph)

	assert.Equal(t, "Gen.1.2", verses[1].ID)
	require.Len(t, verses[1].Words, 1)
	assert.Equal(t, 1, verses[1].Words[0].Position)

	assert.Equal(t, "Exod", verses[2].Book)
	assert.Equal(t, "HC/Pdxcp", verses[2].Words[0].Morph)
}

const milestoneDoc = `<osis>
  <chapter sID="Ruth.1"/>
  <w morph="HTd">outside</w>
  <verse sID="Ruth.1.1"/>
  <w morph="HC/Vqw3ms">וַ/יְהִ֗י</w>
  <p><w morph="HR/Ncmpc">בִּ/ימֵי֙</w></p>
  <verse eID="Ruth.1.1"/>
  <w morph="HD">between</w>
  <verse sID="Ruth.1.2"/>
  <w morph="HC/Ncmsc">וְ/שֵׁ֣ם</w>
  <verse eID="Ruth.1.2"/>
</osis>`

func TestReadMilestones(t *testing.T) {
	verses, err := Read(strings.NewReader(milestoneDoc))
	require.NoError(t, err)
	require.Len(t, verses, 2)

	assert.Equal(t, "Ruth", verses[0].Book, "book falls back to the verse id prefix")
	assert.Equal(t, "Ruth.1.1", verses[0].ID)
	require.Len(t, verses[0].Words, 2)
	assert.Equal(t, "HR/Ncmpc", verses[0].Words[1].Morph)
	assert.Equal(t, 2, verses[0].Words[1].Position)

	require.Len(t, verses[1].Words, 1)
	assert.Equal(t, "HC/Ncmsc", verses[1].Words[0].Morph)
}

func TestReadMalformed(t *testing.T) {
	_, err := Read(strings.NewReader(`<osis><w morph="HD"></x></osis>`))
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "Gen.xml")
	require.NoError(t, os.WriteFile(plain, []byte(containerDoc), 0o644))

	verses, err := ReadFile(plain)
	require.NoError(t, err)
	assert.Len(t, verses, 3)

	_, err = ReadFile(filepath.Join(dir, "missing.xml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadFileXZ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Ruth.xml.xz")
	f, err := os.Create(path)
	require.NoError(t, err)
	w, err := xz.NewWriter(f)
	require.NoError(t, err)
	_, err = w.Write([]byte(milestoneDoc))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	verses, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, verses, 2)
	assert.Equal(t, "Ruth.1.2", verses[1].ID)
}

func TestParseRef(t *testing.T) {
	tests := []struct {
		id      string
		want    Ref
		wantErr bool
	}{
		{"Gen.1.1", Ref{"Gen", 1, 1}, false},
		{"1Kgs.22.54", Ref{"1Kgs", 22, 54}, false},
		{"Gen.1", Ref{}, true},
		{"Gen.x.1", Ref{}, true},
		{".1.1", Ref{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := ParseRef(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
