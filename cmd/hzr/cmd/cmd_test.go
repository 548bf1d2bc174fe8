package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/f3rmion/hzr/internal/config"
	"github.com/f3rmion/hzr/internal/dict"
	"github.com/f3rmion/hzr/internal/history"
	"github.com/f3rmion/hzr/internal/pinyin"
	"github.com/f3rmion/hzr/internal/ruby"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stubLookup = ruby.TableLookup(map[string][]pinyin.Variant{
	"你": {{Pinyin: "nǐ", Zhuyin: "ㄋㄧ"}},
	"好": {{Pinyin: "hǎo", Zhuyin: "ㄏㄠ"}, {Pinyin: "hào", Zhuyin: "ㄏㄠ"}},
})

func useConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	viper.Reset()
	viper.Set("config_dir", dir)
	t.Cleanup(viper.Reset)
	return dir
}

func TestReadInput(t *testing.T) {
	text, err := readInput([]string{"你好", "世界"}, strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "你好 世界", text)

	text, err = readInput(nil, strings.NewReader("第一行\n第二行\n"))
	require.NoError(t, err)
	assert.Equal(t, "第一行\n第二行", text)
}

func TestRenderTokens(t *testing.T) {
	tokens := ruby.Convert("你好!", stubLookup)

	tests := []struct {
		name    string
		format  string
		mode    pinyin.Mode
		display pinyin.ToneDisplay
		want    string
	}{
		{"ruby", formatRuby, pinyin.ModePinyin, pinyin.ToneMark, "nǐ hǎo\n你 好  !"},
		{"inline", formatInline, pinyin.ModePinyin, pinyin.ToneMark, "你(nǐ)好(hǎo)!"},
		{"inline zhuyin numbers", formatInline, pinyin.ModeZhuyin, pinyin.ToneNumber, "你(ㄋㄧ3)好(ㄏㄠ3)!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderTokens(tokens, tt.format, tt.mode, tt.display, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := renderTokens(tokens, "html", pinyin.ModePinyin, pinyin.ToneMark, 0)
	assert.ErrorIs(t, err, errUnknownFormat)
}

func TestWriteLookup(t *testing.T) {
	d := dict.NewDictionary()
	require.NoError(t, d.Load(strings.NewReader(`{"character":"好","definition":"good","pinyin":["hǎo","hào"],"radical":"女"}`)))

	var buf bytes.Buffer
	writeLookup(&buf, "好x", stubLookup, d, pinyin.ToneMark)
	out := buf.String()

	assert.Contains(t, out, "Character: 好")
	assert.Contains(t, out, "Meaning: good")
	assert.Contains(t, out, "Radical: 女")
	assert.Contains(t, out, "* hǎo      hao3     ㄏㄠˇ")
	assert.Contains(t, out, "  hào      hao4     ㄏㄠˋ")
	assert.NotContains(t, out, "Character: x")
}

func TestWriteLookup_NoChinese(t *testing.T) {
	var buf bytes.Buffer
	writeLookup(&buf, "abc", stubLookup, nil, pinyin.ToneMark)
	assert.Equal(t, "No Chinese characters found in: abc\n", buf.String())
}

func TestWriteHistory(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	var buf bytes.Buffer
	writeHistory(&buf, nil, now)
	assert.Equal(t, "No conversions yet\n", buf.String())

	buf.Reset()
	writeHistory(&buf, []history.Item{
		{ID: 2, InputText: "你好\n世界", Timestamp: now.Add(-2 * time.Hour)},
		{ID: 1, InputText: "中文", Timestamp: now.Add(-30 * time.Second)},
	}, now)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "   2  你好⏎世界"))
	assert.True(t, strings.HasSuffix(lines[0], "2h ago"))
	assert.True(t, strings.HasSuffix(lines[1], "Just now"))
}

func TestLoadConfig_Overrides(t *testing.T) {
	dir := useConfigDir(t)

	cfg := config.Default()
	cfg.ToneDisplay = pinyin.ToneNumber
	require.NoError(t, cfg.Save(filepath.Join(dir, config.FileName)))

	viper.Set("mode", "zhuyin")
	got, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, pinyin.ModeZhuyin, got.Mode)
	assert.Equal(t, pinyin.ToneNumber, got.ToneDisplay)

	viper.Set("tone", "bogus")
	_, err = loadConfig(dir)
	assert.ErrorIs(t, err, config.ErrInvalidToneDisplay)
}

func TestLoadEnvironment(t *testing.T) {
	dir := useConfigDir(t)
	ctx := context.Background()

	overrides := filepath.Join(dir, "zhuyin.yaml")
	require.NoError(t, os.WriteFile(overrides, []byte("ni: ㄋㄧˋ\n"), 0644))

	cfg := config.Default()
	cfg.ZhuyinOverrides = "zhuyin.yaml"
	require.NoError(t, cfg.Save(filepath.Join(dir, config.FileName)))

	env, err := loadEnvironment(ctx, true)
	require.NoError(t, err)

	variants := env.lookup()("你")
	require.NotEmpty(t, variants)
	assert.Equal(t, "nǐ", variants[0].Pinyin)
	assert.Equal(t, "ㄋㄧˋ", variants[0].Zhuyin)

	require.NotNil(t, env.history)
	assert.Zero(t, env.history.Add(ctx, "你好"))
	require.NoError(t, env.Close())

	env, err = loadEnvironment(ctx, true)
	require.NoError(t, err)
	defer env.Close()

	items := env.history.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "你好", items[0].InputText)
	assert.FileExists(t, filepath.Join(dir, "history.db"))
}

func TestLoadEnvironment_DictionarySource(t *testing.T) {
	dir := useConfigDir(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "dictionary.txt"),
		[]byte(`{"character":"好","definition":"good","pinyin":["hào"]}`+"\n"), 0644))

	cfg := config.Default()
	cfg.LookupSource = config.SourceDictionary
	require.NoError(t, cfg.Save(filepath.Join(dir, config.FileName)))

	env, err := loadEnvironment(context.Background(), false)
	require.NoError(t, err)
	assert.Nil(t, env.history)
	require.NotNil(t, env.dict)

	variants := env.lookup()("好")
	require.Len(t, variants, 1)
	assert.Equal(t, "hào", variants[0].Pinyin)

	// Characters missing from the dictionary fall back to go-pinyin.
	assert.Equal(t, "nǐ", env.lookup()("你")[0].Pinyin)
}

func TestLoadEnvironment_BadZhuyinFile(t *testing.T) {
	dir := useConfigDir(t)

	cfg := config.Default()
	cfg.ZhuyinOverrides = "missing.yaml"
	require.NoError(t, cfg.Save(filepath.Join(dir, config.FileName)))

	_, err := loadEnvironment(context.Background(), false)
	assert.ErrorContains(t, err, "reading zhuyin file")
}
