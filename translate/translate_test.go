package translate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.tmlkit.dev/tml/tml"
	"go.tmlkit.dev/tml/translate"
	"go.tmlkit.dev/tml/value"
)

func parse(t *testing.T, src string) value.Value {
	t.Helper()

	root, err := tml.ParseString(src, tml.DefaultOptions())
	require.NoError(t, err)

	return root
}

func TestCollectTranslationsBuildsTableAndRemovesBlock(t *testing.T) {
	t.Parallel()

	root := parse(t, ""+
		"translations\n"+
		"  greeting en = hello\n"+
		"  greeting fr = bonjour\n"+
		"msg = \"tr(greeting)\"\n")

	table, pruned, err := translate.Collect(root, translate.DefaultTranslations())
	require.NoError(t, err)
	require.Contains(t, table.ByLang, "en")
	assert.Equal(t, "hello", table.ByLang["en"]["greeting"].Text)
	assert.Equal(t, "bonjour", table.ByLang["fr"]["greeting"].Text)

	require.Len(t, pruned.Object, 1)
	assert.Equal(t, "msg", pruned.Object[0].Name.Text)
}

func TestCollectVariablesUsesEmptyLanguage(t *testing.T) {
	t.Parallel()

	root := parse(t, ""+
		"variables\n"+
		"  host = example.com\n")

	table, _, err := translate.Collect(root, translate.DefaultVariables())
	require.NoError(t, err)
	require.Contains(t, table.ByLang, "")
	assert.Equal(t, "example.com", table.ByLang[""]["host"].Text)
}

func TestCollectDuplicateIDIsError(t *testing.T) {
	t.Parallel()

	root := parse(t, ""+
		"translations\n"+
		"  greeting en = hello\n"+
		"  greeting en = hi\n")

	_, _, err := translate.Collect(root, translate.DefaultTranslations())
	require.Error(t, err)
	assert.ErrorIs(t, err, translate.ErrDuplicateID)
}

func TestSubstituteReplacesKnownReference(t *testing.T) {
	t.Parallel()

	b := value.NewBuilder()
	table := &translate.Table{ByLang: map[string]map[string]value.Value{
		"en": {"greeting": b.Text("hello")},
	}}

	root := b.Object(b.Assign("msg", b.Text("tr(greeting)")))

	out, err := translate.Substitute(root, table, "en", translate.DefaultTranslations())
	require.NoError(t, err)
	assert.Equal(t, "hello", out.Object[0].Val.Text)
}

func TestSubstituteUnknownIDStrictIsError(t *testing.T) {
	t.Parallel()

	table := &translate.Table{ByLang: map[string]map[string]value.Value{}}
	b := value.NewBuilder()
	root := b.Object(b.Assign("msg", b.Text("tr(missing)")))

	cfg := translate.DefaultTranslations()
	cfg.Strict = true

	_, err := translate.Substitute(root, table, "en", cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, translate.ErrUnknownID)
}

func TestSubstituteUnknownIDNonStrictLeavesUnchanged(t *testing.T) {
	t.Parallel()

	table := &translate.Table{ByLang: map[string]map[string]value.Value{}}
	b := value.NewBuilder()
	root := b.Object(b.Assign("msg", b.Text("tr(missing)")))

	out, err := translate.Substitute(root, table, "en", translate.DefaultTranslations())
	require.NoError(t, err)
	assert.Equal(t, "tr(missing)", out.Object[0].Val.Text)
}

func TestSubstituteChainsThroughNestedReference(t *testing.T) {
	t.Parallel()

	b := value.NewBuilder()
	table := &translate.Table{ByLang: map[string]map[string]value.Value{
		"en": {
			"a": b.Text("tr(b)"),
			"b": b.Text("final"),
		},
	}}

	root := b.Object(b.Assign("msg", b.Text("tr(a)")))

	out, err := translate.Substitute(root, table, "en", translate.DefaultTranslations())
	require.NoError(t, err)
	assert.Equal(t, "final", out.Object[0].Val.Text)
}

func TestSubstituteProfilesUsesOwnPrefix(t *testing.T) {
	t.Parallel()

	b := value.NewBuilder()
	table := &translate.Table{ByLang: map[string]map[string]value.Value{
		"prod": {"timeout": b.Int(30)},
	}}

	root := b.Object(b.Assign("timeout", b.Text("pr(timeout)")))

	out, err := translate.Substitute(root, table, "prod", translate.DefaultProfiles())
	require.NoError(t, err)
	assert.Equal(t, int64(30), out.Object[0].Val.AsInt())
}
