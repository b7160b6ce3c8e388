package flatfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/teller-in-go/pkg/model"
)

func TestEncode_RecordLayout(t *testing.T) {
	var buf bytes.Buffer
	err := encode(&buf, []model.Account{
		{Number: 1001, Name: "Ann", Password: "pw1", Balance: 500},
		{Number: 42, Name: "Bo", Password: "secret", Balance: 0.125},
	})
	require.NoError(t, err)

	assert.Equal(t, "1001 Ann pw1 500\n42 Bo secret 0.125\n", buf.String())
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []model.Account
	}{
		{
			name:  "empty stream",
			input: "",
			want:  nil,
		},
		{
			name:  "single record",
			input: "1001 Ann pw1 500\n",
			want:  []model.Account{{Number: 1001, Name: "Ann", Password: "pw1", Balance: 500}},
		},
		{
			name:  "arbitrary whitespace between tokens",
			input: "1001\tAnn  pw1\n500   42 Bo pw2 10",
			want: []model.Account{
				{Number: 1001, Name: "Ann", Password: "pw1", Balance: 500},
				{Number: 42, Name: "Bo", Password: "pw2", Balance: 10},
			},
		},
		{
			name:  "partial trailing record is dropped",
			input: "1001 Ann pw1 500\n42 Bo pw2\n",
			want:  []model.Account{{Number: 1001, Name: "Ann", Password: "pw1", Balance: 500}},
		},
		{
			name:  "malformed number stops the stream",
			input: "xx Ann pw1 500 42 Bo pw2 10",
			want:  nil,
		},
		{
			name:  "malformed balance drops the record",
			input: "1001 Ann pw1 500 42 Bo pw2 ten",
			want:  []model.Account{{Number: 1001, Name: "Ann", Password: "pw1", Balance: 500}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decode(strings.NewReader(tt.input))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundTrip_NameWithInteriorWhitespace(t *testing.T) {
	// Names are written as-is but read back token by token, so a name with
	// interior whitespace shifts every following field. The record doesn't
	// survive the round-trip; this pins down the ledger format's documented
	// lossy behavior rather than blessing it.
	var buf bytes.Buffer
	err := encode(&buf, []model.Account{
		{Number: 1001, Name: "Ann Lee", Password: "pw1", Balance: 500},
	})
	require.NoError(t, err)

	got := decode(&buf)
	assert.Empty(t, got)
}
