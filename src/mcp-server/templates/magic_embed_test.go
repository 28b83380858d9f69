// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package templates

import (
	"io/fs"
	"sync"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMagicEmbed_ReadFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		contains []string
		wantErr  bool
	}{
		{
			name:     "read server instructions template",
			filename: Instructions,
			contains: []string{"# peek509", "{{range .Tools}}"},
		},
		{
			name:     "read certificate formats documentation",
			filename: CertificateFormats,
			contains: []string{"PEM", "DER", "maxBytes"},
		},
		{
			name:     "read certificate review prompt",
			filename: CertificateReview,
			contains: []string{"{{.Report}}"},
		},
		{
			name:     "read non-existent file",
			filename: "non-existent.md",
			wantErr:  true,
		},
		{
			name:     "read file with invalid path",
			filename: "../invalid.md",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MagicEmbed.ReadFile(tt.filename)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, string(data), want)
			}
		})
	}
}

func TestMagicEmbed_TemplatesParse(t *testing.T) {
	for _, name := range []string{Instructions, CertificateReview} {
		t.Run(name, func(t *testing.T) {
			data, err := MagicEmbed.ReadFile(name)
			require.NoError(t, err)

			_, err = template.New(name).Parse(string(data))
			assert.NoError(t, err)
		})
	}
}

func TestMagicEmbed_EmbeddedFiles(t *testing.T) {
	names, err := fs.Glob(embeddedFS, "*")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{Instructions, CertificateFormats, CertificateReview}, names)
}

func TestMagicEmbed_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for _, name := range []string{Instructions, CertificateFormats, CertificateReview} {
		wg.Go(func() {
			for range 10 {
				_, err := MagicEmbed.ReadFile(name)
				assert.NoError(t, err)
			}
		})
	}
	wg.Wait()
}

func TestMagicEmbed_InterfaceCompliance(t *testing.T) {
	var _ EmbedFS = MagicEmbed
	var _ EmbedFS = &embedFS{}
}
