package xchain

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/xchain/internal/testutils"
	"github.com/smartcontractkit/xchain/sdk/evm"
)

const testAccount = "ETH:0x2222222222222222222222222222222222222222"

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := BuildXChainCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

// writeEnv writes a .env file holding the signer's key and returns its path.
func writeEnv(t *testing.T, signer *testutils.ECDSASigner, extra string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	content := "PRIVATE_KEY=" + signer.PrivateKeyHex() + "\n" + extra
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// field returns the value printed after "name: " in out.
func field(t *testing.T, out, name string) string {
	t.Helper()

	for _, line := range strings.Split(out, "\n") {
		if v, ok := strings.CutPrefix(line, name+": "); ok {
			return v
		}
	}
	require.Failf(t, "field not found", "%q not in output %q", name, out)

	return ""
}

func TestParseCmd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    []string
		wantErr string
	}{
		{
			name: "ethereum account",
			give: "eth:0x2222222222222222222222222222222222222222",
			want: []string{
				"account: " + testAccount,
				"family: evm",
				"borsh: 0x01012222222222222222222222222222222222222222",
				"bcs: 0x012222222222222222222222222222222222222222",
			},
		},
		{
			name:    "missing tag",
			give:    "0x2222222222222222222222222222222222222222",
			wantErr: "bad asset: missing chain tag",
		},
		{
			name:    "placeholder chain",
			give:    "SOL:0x2222222222222222222222222222222222222222",
			wantErr: "unsupported operation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, _, err := execute(t, "parse", tt.give)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w+"\n")
			}
		})
	}
}

func TestHashCmd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    []string
		want    string
		wantErr string
	}{
		{
			name: "text message",
			give: []string{"hash", ""},
			want: "ETH:0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470\n",
		},
		{
			name: "hex message",
			give: []string{"hash", "--hex", "0x"},
			want: "ETH:0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470\n",
		},
		{
			name:    "bad hex",
			give:    []string{"hash", "--hex", "zz"},
			wantErr: "invalid message hex",
		},
		{
			name:    "bad chain tag",
			give:    []string{"hash", "--chain", "BTC", "hello"},
			wantErr: `bad chain id: "BTC"`,
		},
		{
			name:    "placeholder chain",
			give:    []string{"hash", "--chain", "TEZ", "hello"},
			wantErr: "unsupported operation: hash_bytes is not implemented for chain TEZ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, _, err := execute(t, tt.give...)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSignerCmd(t *testing.T) {
	t.Parallel()

	signer := testutils.NewECDSASigner()
	env := writeEnv(t, signer, "ETH_KEY_ID=node-key\n")

	out, _, err := execute(t, "signer", "--env", env)
	require.NoError(t, err)
	assert.Equal(t, "ETH:"+evm.FormatAddress(signer.Address())+"\n", out)
}

func TestSignerCmd_MissingKey(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ETH_KEY_ID=node-key\n"), 0o600))

	_, _, err := execute(t, "signer", "--env", path)
	require.ErrorContains(t, err, "PRIVATE_KEY not found in")
}

func TestSignRecoverVerify(t *testing.T) {
	t.Parallel()

	signer := testutils.NewECDSASigner()
	env := writeEnv(t, signer, "")
	account := "ETH:" + evm.FormatAddress(signer.Address())

	out, _, err := execute(t, "sign", "--env", env, "hello xchain")
	require.NoError(t, err)
	assert.Equal(t, account, field(t, out, "signer"))
	assert.Equal(t, signer.SignPersonal([]byte("hello xchain")).String(), field(t, out, "signature"))
	envelope := field(t, out, "envelope")

	out, _, err = execute(t, "recover", "hello xchain", field(t, out, "signature"))
	require.NoError(t, err)
	assert.Equal(t, account+"\n", out)

	out, stderr, err := execute(t, "verify", "--metrics", "hello xchain", envelope)
	require.NoError(t, err)
	assert.Equal(t, "ok: "+account+"\nverified 1 signatures\n", out)
	assert.Contains(t, stderr, "xchain_operations_total{chain=ETH,operation=recover_account,outcome=ok} 1")

	_, _, err = execute(t, "verify", "tampered", envelope)
	require.ErrorContains(t, err, "signature 0: signature account mismatch")
}

func TestVerifyCmd_Genesis(t *testing.T) {
	t.Parallel()

	signers := testutils.MakeNewECDSASigners(2)
	reporter, stranger := &signers[0], &signers[1]

	genesis := filepath.Join(t.TempDir(), "genesis.json")
	require.NoError(t, os.WriteFile(genesis, []byte(`{"reporters": ["ETH:`+evm.FormatAddress(reporter.Address())+`"]}`), 0o600))

	envelopeFor := func(s *testutils.ECDSASigner) string {
		out, _, err := execute(t, "sign", "--env", writeEnv(t, s, ""), "report")
		require.NoError(t, err)

		return field(t, out, "envelope")
	}
	reporterEnvelope := envelopeFor(reporter)
	strangerEnvelope := envelopeFor(stranger)

	out, _, err := execute(t, "verify", "--genesis", genesis, "report", reporterEnvelope)
	require.NoError(t, err)
	assert.Contains(t, out, "verified 1 signatures\n")

	_, _, err = execute(t, "verify", "--genesis", genesis, "report", reporterEnvelope, strangerEnvelope)
	require.ErrorContains(t, err, "signer is not a reporter: ETH:"+evm.FormatAddress(stranger.Address()))
}

func TestVerifyCmd_BadEnvelope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		wantErr string
	}{
		{
			name:    "not hex",
			give:    "abc",
			wantErr: "envelope 0: invalid hex",
		},
		{
			name:    "unknown version",
			give:    "0x02",
			wantErr: "envelope 0: unknown codec version: 2",
		},
		{
			name:    "truncated",
			give:    "0x0101",
			wantErr: "envelope 0:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, "verify", "msg", tt.give)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
