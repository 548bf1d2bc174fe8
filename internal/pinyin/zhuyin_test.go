package pinyin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDictionary(t *testing.T) {
	d := DefaultDictionary()
	require.Greater(t, d.Size(), 400)

	tests := map[string]string{
		"ni":    "ㄋㄧ",
		"hao":   "ㄏㄠ",
		"zhi":   "ㄓ",
		"si":    "ㄙ",
		"jun":   "ㄐㄩㄣ",
		"xue":   "ㄒㄩㄝ",
		"lü":    "ㄌㄩ",
		"you":   "ㄧㄡ",
		"wei":   "ㄨㄟ",
		"yong":  "ㄩㄥ",
		"zhong": "ㄓㄨㄥ",
		"er":    "ㄦ",
		"n":     "ㄋ",
	}
	for syllable, want := range tests {
		got, ok := d.Lookup(syllable)
		assert.True(t, ok, syllable)
		assert.Equal(t, want, got, syllable)
	}
}

func TestDictionary_LookupIsCaseInsensitive(t *testing.T) {
	d := DefaultDictionary()
	got, ok := d.Lookup("NI")
	assert.True(t, ok)
	assert.Equal(t, "ㄋㄧ", got)
}

func TestZhuyinBase(t *testing.T) {
	d := DefaultDictionary()

	assert.Equal(t, "ㄋㄧ", ZhuyinBase("nǐ", d))
	assert.Equal(t, "ㄏㄠ", ZhuyinBase("Hǎo", d))
	assert.Equal(t, "ㄌㄩ", ZhuyinBase("lǜ", d))
	assert.Equal(t, "", ZhuyinBase("", d))
}

func TestZhuyinBase_MissFallsBackToBasePinyin(t *testing.T) {
	d := DefaultDictionary()
	assert.Equal(t, "blorp", ZhuyinBase("BLǒRP", d))
	// Upper-case tone marks are not stripped, only lower-cased.
	assert.Equal(t, "blǒrp", ZhuyinBase("BLǑRP", d))
	assert.Equal(t, "xyz", ZhuyinBase("xyz", nil))
}

func TestDictionary_LoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zhuyin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("NI: ㄋ一\nblorp: ㄅㄌ\n"), 0644))

	d := DefaultDictionary()
	before := d.Size()
	require.NoError(t, d.LoadFile(path))

	got, _ := d.Lookup("ni")
	assert.Equal(t, "ㄋ一", got)
	got, _ = d.Lookup("blorp")
	assert.Equal(t, "ㄅㄌ", got)
	assert.Equal(t, before+1, d.Size())
}

func TestDictionary_LoadFileErrors(t *testing.T) {
	d := NewDictionary()
	assert.Error(t, d.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0644))
	assert.Error(t, d.LoadFile(path))
}
