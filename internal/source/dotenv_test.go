package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseDotenv_Basics verifies KEY=value parsing with comments, blank
// lines, export prefixes and quoted values.
func TestParseDotenv_Basics(t *testing.T) {
	input := `
# production overrides
DEBUG=false
export TIME_ZONE=Europe/Berlin
SECRET_KEY="s3cr3t="
EMAIL_HOST='mail.internal'
EMPTY=
`
	pairs, err := parseDotenv("test.env", []byte(input))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"DEBUG":      "false",
		"TIME_ZONE":  "Europe/Berlin",
		"SECRET_KEY": "s3cr3t=",
		"EMAIL_HOST": "mail.internal",
		"EMPTY":      "",
	}, pairs)
}

// TestParseDotenv_ValueMayContainEquals verifies splitting on the first
// '=' only.
func TestParseDotenv_ValueMayContainEquals(t *testing.T) {
	pairs, err := parseDotenv("test.env", []byte("DATABASE_URL=postgres://u:p@host/db?sslmode=require\n"))
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@host/db?sslmode=require", pairs["DATABASE_URL"])
}

// TestParseDotenv_DuplicateKey verifies that a repeated key fails with a
// DuplicateKeyError naming key and line.
func TestParseDotenv_DuplicateKey(t *testing.T) {
	input := "DEBUG=true\nTIME_ZONE=UTC\nDEBUG=false\n"

	_, err := parseDotenv("test.env", []byte(input))
	require.Error(t, err)

	var derr *DuplicateKeyError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "DEBUG", derr.Key)
	assert.Equal(t, 3, derr.Line)
}

// TestParseDotenv_MissingEquals verifies the malformed-line failure.
func TestParseDotenv_MissingEquals(t *testing.T) {
	_, err := parseDotenv("test.env", []byte("DEBUG true\n"))
	assert.Error(t, err)
}

// TestParseDotenv_EmptyKey verifies that "=value" lines are rejected.
func TestParseDotenv_EmptyKey(t *testing.T) {
	_, err := parseDotenv("test.env", []byte("=value\n"))
	assert.Error(t, err)
}

// TestUnquote verifies quote stripping only removes one matching pair.
func TestUnquote(t *testing.T) {
	assert.Equal(t, "x", unquote(`"x"`))
	assert.Equal(t, "x", unquote("'x'"))
	assert.Equal(t, `"x'`, unquote(`"x'`))
	assert.Equal(t, `'x'`, unquote(`"'x'"`))
	assert.Equal(t, "", unquote(""))
	assert.Equal(t, `"`, unquote(`"`))
}
