package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/inikit/pkg/types"
)

const combat = "[Combat]\ndamage=10\nname=Longsword\n\n[Empty]\n"

func parse(t *testing.T, text string, settings types.Settings) *Document {
	t.Helper()
	doc, err := Parse([]byte(text), settings)
	require.NoError(t, err)
	return doc
}

func TestSectionSize(t *testing.T) {
	doc := parse(t, combat, types.DefaultSettings())

	assert.Equal(t, 2, doc.SectionSize("Combat"))
	assert.Equal(t, 0, doc.SectionSize("Empty"))
	assert.Equal(t, -1, doc.SectionSize("Missing"))
	assert.Equal(t, -1, doc.SectionSize(""))
}

func TestSectionsAreCaseSensitive(t *testing.T) {
	doc := parse(t, combat, types.DefaultSettings())

	assert.Equal(t, -1, doc.SectionSize("combat"))
	_, ok := doc.Value("Combat", "Damage")
	assert.False(t, ok)
}

func TestValue(t *testing.T) {
	doc := parse(t, combat, types.DefaultSettings())

	v, ok := doc.Value("Combat", "damage")
	require.True(t, ok)
	assert.Equal(t, "10", v)

	_, ok = doc.Value("Combat", "missing")
	assert.False(t, ok)
	_, ok = doc.Value("Missing", "damage")
	assert.False(t, ok)
}

func TestValue_KeepsInlineCommentsAndQuotes(t *testing.T) {
	doc := parse(t, "[S]\na=value ; not a comment\nb=\"quoted\"\nc=path\\\n", types.DefaultSettings())

	v, _ := doc.Value("S", "a")
	assert.Equal(t, "value ; not a comment", v)
	v, _ = doc.Value("S", "b")
	assert.Equal(t, `"quoted"`, v)
	v, _ = doc.Value("S", "c")
	assert.Equal(t, `path\`, v)
}

func TestValue_NoParentSectionFallback(t *testing.T) {
	doc := parse(t, "[a]\nk=parent\n[a.b]\nother=1\n", types.DefaultSettings())

	_, ok := doc.Value("a.b", "k")
	assert.False(t, ok)
}

func TestSetValue_CreatesSection(t *testing.T) {
	doc := New(types.DefaultSettings())
	require.True(t, doc.IsEmpty())

	require.NoError(t, doc.SetInt("Combat", "damage", 20))
	require.NoError(t, doc.SetFloat("Combat", "speed", 1.5))
	require.NoError(t, doc.SetValue("Combat", "name", "Axe"))

	assert.False(t, doc.IsEmpty())
	assert.Equal(t, []string{"Combat"}, doc.Sections())
	assert.Equal(t, "[Combat]\ndamage = 20\nspeed = 1.5\nname = Axe\n", string(doc.Bytes()))
}

func TestSetValue_Replaces(t *testing.T) {
	doc := parse(t, combat, types.DefaultSettings())
	require.NoError(t, doc.SetInt("Combat", "damage", 20))

	assert.Equal(t, []string{"20"}, doc.Values("Combat", "damage"))
}

func TestSetValue_RejectsEmptyNames(t *testing.T) {
	doc := New(types.DefaultSettings())
	assert.Error(t, doc.SetValue("", "k", "v"))
	assert.Error(t, doc.SetValue("s", "", "v"))
}

func TestSetValue_RejectsUnstorableNames(t *testing.T) {
	doc := New(types.DefaultSettings())
	for _, name := range [][2]string{
		{"A", " padded"},
		{"A", "tail\t"},
		{"A", "two\nlines"},
		{"two\nlines", "k"},
		{"A", "a=`\""},
		{"A", "-"},
	} {
		err := doc.SetValue(name[0], name[1], "v")
		assert.ErrorIs(t, err, types.ErrInvalidAddress, "%q/%q", name[0], name[1])
	}
	assert.True(t, doc.IsEmpty())
}

func TestBytes_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		section string
		key     string
		value   string
	}{
		{"plain", "A", "k", "v"},
		{"empty value", "A", "k", ""},
		{"leading triple quote", "A", "q", `"""quoted`},
		{"bare triple quote", "A", "q", `"""`},
		{"inner triple quote", "A", "q", `a"""b`},
		{"trailing quote", "A", "q", `ends with quote"`},
		{"leading backtick", "A", "q", "`tick"},
		{"surrounding spaces", "A", "q", "  padded  "},
		{"leading tab", "A", "q", "\ttabbed"},
		{"comment markers", "A", "q", "; not # a comment"},
		{"multi-line", "A", "q", "one\ntwo\n"},
		{"multi-line with triple quote", "A", "q", "one\n\"\"\"two"},
		{"multi-line crlf", "A", "q", "one\r\ntwo"},
		{"section bracket key", "A", "[odd", "v"},
		{"semicolon key", "A", ";semi", "v"},
		{"hash key", "A", "#hash", "v"},
		{"quote key", "A", `"q`, "v"},
		{"backtick key", "A", "`b", "v"},
		{"equals key", "A", "a=b", "v"},
		{"equals and quote key", "A", `x"y=z`, "v"},
		{"backtick and quote key", "A", "`a\"b", "v"},
		{"inner quote key", "A", `a"b`, "v"},
		{"bracket section", "Odd]Name", "k", "v"},
		{"padded section", " S ", "k", "v"},
	}
	for _, spaces := range []bool{false, true} {
		settings := types.DefaultSettings()
		settings.UseSpaces = spaces
		for _, tt := range tests {
			name := tt.name
			if spaces {
				name += " with spaces"
			}
			t.Run(name, func(t *testing.T) {
				doc := parse(t, "[A]\nx=1\n", settings)
				require.NoError(t, doc.SetValue(tt.section, tt.key, tt.value))

				back, err := Parse(doc.Bytes(), settings)
				require.NoError(t, err, "%s", doc.Bytes())

				got, ok := back.Value(tt.section, tt.key)
				require.True(t, ok, "%s", doc.Bytes())
				assert.Equal(t, tt.value, got)
				x, _ := back.Value("A", "x")
				assert.Equal(t, "1", x)
				assert.Equal(t, doc.Sections(), back.Sections())
				assert.Equal(t, doc.Keys(tt.section), back.Keys(tt.section))
			})
		}
	}
}

func TestBytes_FlattensUnquotableBlock(t *testing.T) {
	doc := New(types.DefaultSettings())
	require.NoError(t, doc.SetValue("A", "k", "one\n`two\"\"\"\n"))

	back, err := Parse(doc.Bytes(), types.DefaultSettings())
	require.NoError(t, err)
	v, _ := back.Value("A", "k")
	assert.Equal(t, "one `two\"\"\" ", v)
}

func TestSaveLoad_QuotedNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quoted.ini")
	doc := parse(t, "[A]\nx=1\n", types.DefaultSettings())
	require.NoError(t, doc.SetValue("A", "q", `"""quoted`))
	require.NoError(t, doc.SetValue("A", "[odd", "v"))
	require.NoError(t, doc.Save(path, false))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[A]\nx = 1\nq = \"\"\"\"\"\"quoted\"\"\"\n`[odd` = v\n", string(raw))

	back, err := Load(path, types.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, back.Sections())
	assert.Equal(t, []string{"x", "q", "[odd"}, back.Keys("A"))
	v, _ := back.Value("A", "q")
	assert.Equal(t, `"""quoted`, v)
	v, _ = back.Value("A", "[odd")
	assert.Equal(t, "v", v)
}

func TestMultiKey(t *testing.T) {
	text := "[Spawn]\nmob=goblin\nmob=orc\n"

	single := parse(t, text, types.DefaultSettings())
	assert.Equal(t, []string{"orc"}, single.Values("Spawn", "mob"))

	settings := types.DefaultSettings()
	settings.MultiKey = true
	multi := parse(t, text, settings)
	assert.Equal(t, []string{"goblin", "orc"}, multi.Values("Spawn", "mob"))

	v, _ := multi.Value("Spawn", "mob")
	assert.Equal(t, "goblin", v)

	require.NoError(t, multi.SetValue("Spawn", "mob", "troll"))
	assert.Equal(t, []string{"goblin", "orc", "troll"}, multi.Values("Spawn", "mob"))
	assert.Equal(t, "[Spawn]\nmob = goblin\nmob = orc\nmob = troll\n", string(multi.Bytes()))
}

func TestSetSetting_MultiKeyRebuilds(t *testing.T) {
	doc := parse(t, "[Spawn]\nmob=goblin\n", types.DefaultSettings())

	require.NoError(t, doc.SetSetting(types.SettingMultiKey, true))
	assert.True(t, doc.Settings().MultiKey)
	require.NoError(t, doc.SetValue("Spawn", "mob", "orc"))
	assert.Equal(t, []string{"goblin", "orc"}, doc.Values("Spawn", "mob"))

	// Collapsing keeps the last value, as a re-read of the file would.
	require.NoError(t, doc.SetSetting(types.SettingMultiKey, false))
	assert.Equal(t, []string{"orc"}, doc.Values("Spawn", "mob"))
}

func TestUseSpaces(t *testing.T) {
	doc := parse(t, "[S]\na=1\n", types.DefaultSettings())
	assert.True(t, doc.Settings().UseSpaces)
	assert.Equal(t, "[S]\na = 1\n", string(doc.Bytes()))

	require.NoError(t, doc.SetSetting(types.SettingUseSpaces, false))
	assert.False(t, doc.Settings().UseSpaces)
	assert.Equal(t, "[S]\na=1\n", string(doc.Bytes()))
}

func TestMultiLine(t *testing.T) {
	doc := New(types.DefaultSettings())
	require.NoError(t, doc.SetValue("Quest", "text", "line one\nline two"))

	out := doc.Bytes()
	assert.Equal(t, "[Quest]\ntext = \"\"\"line one\nline two\"\"\"\n", string(out))

	back, err := Parse(out, types.DefaultSettings())
	require.NoError(t, err)
	v, _ := back.Value("Quest", "text")
	assert.Equal(t, "line one\nline two", v)

	require.NoError(t, doc.SetSetting(types.SettingMultiLine, false))
	assert.Equal(t, "[Quest]\ntext = line one line two\n", string(doc.Bytes()))
}

func TestBytes_PreservesCommentsAndOrder(t *testing.T) {
	text := "; top\n[B]\n# about z\nz = 1\na = 2\n\n[A]\nk = v\n"
	doc := parse(t, text, types.DefaultSettings())

	assert.Equal(t, []string{"B", "A"}, doc.Sections())
	if diff := cmp.Diff([]string{"z", "a"}, doc.Keys("B")); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, text, string(doc.Bytes()))
}

func TestBytes_HeaderlessKeys(t *testing.T) {
	text := "global = 1\n\n[S]\nk = v\n"
	doc := parse(t, text, types.DefaultSettings())

	assert.Equal(t, text, string(doc.Bytes()))
}

func TestDelete(t *testing.T) {
	doc := parse(t, combat, types.DefaultSettings())

	assert.True(t, doc.DeleteKey("Combat", "name"))
	assert.False(t, doc.DeleteKey("Combat", "name"))
	assert.Equal(t, []string{"damage"}, doc.Keys("Combat"))

	assert.True(t, doc.DeleteSection("Empty"))
	assert.False(t, doc.DeleteSection("Empty"))
	assert.Equal(t, []string{"Combat"}, doc.Sections())
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, parse(t, "", types.DefaultSettings()).IsEmpty())
	assert.True(t, parse(t, "; only a comment\n", types.DefaultSettings()).IsEmpty())
	assert.False(t, parse(t, "[S]\n", types.DefaultSettings()).IsEmpty())
	assert.False(t, parse(t, "k=v\n", types.DefaultSettings()).IsEmpty())
}

func TestLoadSave_Unicode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.ini")
	require.NoError(t, os.WriteFile(path, []byte("\xEF\xBB\xBF[Names]\nhero=Dûrin\n"), 0o644))

	doc, err := Load(path, types.DefaultSettings())
	require.NoError(t, err)
	v, _ := doc.Value("Names", "hero")
	assert.Equal(t, "Dûrin", v)

	require.NoError(t, doc.Save(path, false))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[Names]\nhero = Dûrin\n", string(raw))
}

func TestLoadSave_Windows1252(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.ini")
	require.NoError(t, os.WriteFile(path, []byte("[Names]\nhero=D\xFBrin\n"), 0o644))

	settings := types.DefaultSettings()
	settings.Unicode = false
	doc, err := Load(path, settings)
	require.NoError(t, err)
	v, _ := doc.Value("Names", "hero")
	assert.Equal(t, "Dûrin", v)

	require.NoError(t, doc.SetValue("Names", "villain", "Zoë"))
	require.NoError(t, doc.Save(path, true))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[Names]\nhero = D\xFBrin\nvillain = Zo\xEB\n", string(raw))
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.ini"), types.DefaultSettings())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestClose(t *testing.T) {
	doc := parse(t, combat, types.DefaultSettings())
	doc.Close()

	assert.True(t, doc.Closed())
	assert.Equal(t, -1, doc.SectionSize("Combat"))
	assert.ErrorIs(t, doc.SetValue("Combat", "damage", "1"), ErrClosed)
	assert.ErrorIs(t, doc.Save(filepath.Join(t.TempDir(), "x.ini"), false), ErrClosed)
}
