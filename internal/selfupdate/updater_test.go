package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		goos   string
		goarch string
		want   string
	}{
		{"darwin", "amd64", "aiquest_Darwin_all.tar.gz"},
		{"darwin", "arm64", "aiquest_Darwin_all.tar.gz"},
		{"linux", "amd64", "aiquest_Linux_x86_64.tar.gz"},
		{"linux", "arm64", "aiquest_Linux_arm64.tar.gz"},
		{"linux", "386", "aiquest_Linux_i386.tar.gz"},
		{"windows", "amd64", "aiquest_Windows_x86_64.zip"},
		{"windows", "arm64", "aiquest_Windows_arm64.zip"},
	}
	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		_, err := assetNameFor("freebsd", "amd64")
		require.Error(t, err)
		_, err = assetNameFor("linux", "mips")
		require.Error(t, err)
	})
}

func TestParseChecksums(t *testing.T) {
	t.Run("goreleaser format", func(t *testing.T) {
		got := parseChecksums([]byte("abc123  aiquest_Darwin_all.tar.gz\ndef456  aiquest_Linux_x86_64.tar.gz\n"))
		assert.Equal(t, map[string]string{
			"aiquest_Darwin_all.tar.gz":   "abc123",
			"aiquest_Linux_x86_64.tar.gz": "def456",
		}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, parseChecksums(nil))
	})

	t.Run("garbage lines skipped", func(t *testing.T) {
		got := parseChecksums([]byte("abc123  file.tar.gz\nbadline\n  \nfoo  bar  baz\nghi789  other.tar.gz\n"))
		assert.Equal(t, map[string]string{
			"file.tar.gz":  "abc123",
			"other.tar.gz": "ghi789",
		}, got)
	})
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("release payload")
	sum := sha256.Sum256(data)

	assert.NoError(t, verifyChecksum(data, hex.EncodeToString(sum[:])))

	err := verifyChecksum(data, zeroHash)
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	payload := []byte("#!/bin/sh\necho aiquest")

	t.Run("tar.gz asset", func(t *testing.T) {
		got, err := extractBinary(buildTarGz(t, "aiquest", payload), "aiquest_Darwin_all.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("zip asset", func(t *testing.T) {
		got, err := extractBinary(buildZip(t, "aiquest.exe", payload), "aiquest_Windows_x86_64.zip")
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("binary missing from archive", func(t *testing.T) {
		_, err := extractBinary(buildTarGz(t, "README.md", payload), "aiquest_Darwin_all.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestApplyUpdate(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "aiquest")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	replacement := []byte("new-binary-content")
	sum := sha256.Sum256(replacement)
	require.NoError(t, applyUpdate(replacement, target, sum[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	// The old file mode carries over to the replacement.
	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

const zeroHash = "0000000000000000000000000000000000000000000000000000000000000000"

// releaseServer serves a fake GitHub release: the latest-release check,
// one downloadable asset and its checksums.txt.
func releaseServer(t *testing.T, tag, asset string, archive []byte, checksums string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/haneul/aiquest/releases/latest":
			fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
		case fmt.Sprintf("/haneul/aiquest/releases/download/%s/%s", tag, asset):
			_, _ = w.Write(archive)
		case fmt.Sprintf("/haneul/aiquest/releases/download/%s/checksums.txt", tag):
			_, _ = w.Write([]byte(checksums))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestUpdate(t *testing.T) {
	payload := []byte("new-aiquest-binary")
	asset, err := assetName()
	require.NoError(t, err)

	// Match the archive format Update will request for this platform.
	var archive []byte
	if runtime.GOOS == "windows" {
		archive = buildZip(t, "aiquest.exe", payload)
	} else {
		archive = buildTarGz(t, "aiquest", payload)
	}
	sum := sha256.Sum256(archive)
	goodChecksums := fmt.Sprintf("%s  %s\n", hex.EncodeToString(sum[:]), asset)

	t.Run("full flow", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "aiquest")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := releaseServer(t, "v2.0.0", asset, archive, goodChecksums)
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build refuses to update", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already on latest", func(t *testing.T) {
		server := releaseServer(t, "v1.0.0", asset, archive, goodChecksums)
		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch aborts before apply", func(t *testing.T) {
		badChecksums := fmt.Sprintf("%s  %s\n", zeroHash, asset)
		server := releaseServer(t, "v2.0.0", asset, archive, badChecksums)
		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("missing asset", func(t *testing.T) {
		server := releaseServer(t, "v2.0.0", "some_other_asset.tar.gz", archive, goodChecksums)
		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func buildZip(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create(name)
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
