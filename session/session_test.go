/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokensets/internal/mapfs"
	"bennypowers.dev/tokensets/session"
	"bennypowers.dev/tokensets/testutil"
)

func TestOpen_DocumentArgWins(t *testing.T) {
	filesystem := mapfs.New()
	filesystem.AddFile(".config/tokensets.yaml", "document: configured.json\n", 0644)
	filesystem.AddFile("configured.json", `{"configured": []}`, 0644)
	filesystem.AddFile("explicit.json", `{"explicit": [{"name": "a", "value": "1"}]}`, 0644)

	sess, err := session.Open(filesystem, ".", "explicit.json")
	require.NoError(t, err)

	assert.Equal(t, "explicit.json", sess.DocumentPath)
	assert.Equal(t, []string{"explicit"}, sess.Store.SetNames())
}

func TestOpen_ConfiguredDocument(t *testing.T) {
	filesystem := mapfs.New()
	filesystem.AddFile(".config/tokensets.yaml", "document: tokens.json\nprefix: rh\n", 0644)
	filesystem.AddFile("tokens.json", `{"global": [{"name": "color.bg", "value": "white"}]}`, 0644)

	sess, err := session.Open(filesystem, ".", "")
	require.NoError(t, err)

	assert.Equal(t, "tokens.json", sess.DocumentPath)
	assert.Equal(t, "rh", sess.Config.Prefix)
	tokens, err := sess.Store.Tokens("global")
	require.NoError(t, err)
	assert.Len(t, tokens, 1)
}

func TestOpen_SeedsFromCatalogWithoutDocument(t *testing.T) {
	sess, err := session.Open(mapfs.New(), ".", "")
	require.NoError(t, err)

	assert.Empty(t, sess.DocumentPath)
	tokens, err := sess.Store.Tokens("global")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens, "store seeds from the default catalog")

	var names []string
	for _, tok := range tokens {
		names = append(names, tok.Name)
	}
	assert.Contains(t, names, "colors.black")
}

func TestOpen_MissingConfiguredDocument(t *testing.T) {
	filesystem := mapfs.New()
	filesystem.AddFile(".config/tokensets.yaml", "document: gone.json\n", 0644)

	_, err := session.Open(filesystem, ".", "")
	assert.Error(t, err)
}

func TestPersist_WritesDocumentAndSyncPayload(t *testing.T) {
	filesystem := mapfs.New()
	filesystem.AddFile(".config/tokensets.yaml", "document: tokens.json\nsyncFile: sync/payload.json\n", 0644)
	filesystem.AddFile("tokens.json", `{"global": [{"name": "color.bg", "value": "white"}]}`, 0644)

	sess, err := session.Open(filesystem, ".", "")
	require.NoError(t, err)

	sess.Store, err = sess.Store.CreateToken("global", "color.fg", "{color.bg}", nil)
	require.NoError(t, err)
	require.NoError(t, sess.Persist())

	reopened, err := session.Open(filesystem, ".", "")
	require.NoError(t, err)
	tokens, err := reopened.Store.Tokens("global")
	require.NoError(t, err)
	assert.Len(t, tokens, 2)

	assert.True(t, filesystem.Exists("sync/payload.json"), "sync payload written")
}

func TestOpen_GlobDiscoveryFromFixtureWorkspace(t *testing.T) {
	filesystem := testutil.NewFixtureFS(t, "workspace", ".")

	sess, err := session.Open(filesystem, ".", "")
	require.NoError(t, err)

	assert.Equal(t, "base.tokens.json", sess.DocumentPath)
	assert.Equal(t, "ds", sess.Config.Prefix)
	tokens, err := sess.Store.Tokens("global")
	require.NoError(t, err)
	assert.Len(t, tokens, 2)

	require.NoError(t, sess.Persist())
	assert.True(t, filesystem.Exists(".cache/tokens-sync.json"))
}

func TestPersist_NoDocument(t *testing.T) {
	sess, err := session.Open(mapfs.New(), ".", "")
	require.NoError(t, err)

	assert.Error(t, sess.Persist())
}
