package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-authform/pkg/model"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		configFile, storeFlag, pathFlag, presetFlag = "authform.yaml", "", "", ""
		verbose = false
		usersFormat, schemaFormat, schemaValidate, schemaSignIn = "table", "json", "", false
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "authform dev")
}

func TestSchemaPrintsDocument(t *testing.T) {
	out, err := execute(t, "schema", "--config", filepath.Join(t.TempDir(), "none.yaml"), "--preset", "extended")
	require.NoError(t, err)
	assert.Contains(t, out, "registerUser")
	assert.Contains(t, out, "extended password rules")
}

func TestSchemaValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"firstName":"Ada","lastName":"Lovelace","username":"ada","email":"ada@example.com","password":"Passw0rd!","confirmPassword":"Passw0rd!"}`), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte(`{"username":"ada"}`), 0o600))

	out, err := execute(t, "schema", "--config", filepath.Join(dir, "none.yaml"), "--validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "payload is valid")

	_, err = execute(t, "schema", "--config", filepath.Join(dir, "none.yaml"), "--validate", bad)
	assert.Error(t, err)

	_, err = execute(t, "schema", "--config", filepath.Join(dir, "none.yaml"), "--validate", bad, "--signin")
	assert.Error(t, err)
}

func TestUsersListsFileStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users.json")
	id := ulid.Make()
	doc := `{"users":[{"id":"` + id.String() + `","firstName":"Ada","lastName":"Lovelace","username":"ada","email":"ada@example.com","createdAt":"2026-01-02T03:04:05Z"}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, err := execute(t, "users", "--config", filepath.Join(dir, "none.yaml"), "--store", "file", "--store-path", path)
	require.NoError(t, err)
	assert.Contains(t, out, "USERNAME")
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "2026-01-02T03:04:05Z")
}

func TestWriteUsersFormats(t *testing.T) {
	users := []model.UserRecord{{
		ID:        ulid.Make(),
		Profile:   model.Profile{FirstName: "Grace", LastName: "Hopper", Username: "grace", Email: "grace@example.com"},
		CreatedAt: time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC),
	}}

	var buf bytes.Buffer
	require.NoError(t, writeUsers(&buf, "json", users))
	assert.Contains(t, buf.String(), `"username": "grace"`)

	buf.Reset()
	require.NoError(t, writeUsers(&buf, "yaml", users))
	assert.True(t, strings.Contains(buf.String(), "username: grace"), buf.String())

	assert.Error(t, writeUsers(&buf, "xml", users))
}

func TestInvalidStoreFlag(t *testing.T) {
	_, err := execute(t, "users", "--config", filepath.Join(t.TempDir(), "none.yaml"), "--store", "redis")
	assert.Error(t, err)
}
