package reflector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scyaay/angular/internal/errors"
)

func TestCompanionURI(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    string
		wantErr bool
	}{
		{
			name: "simple file",
			uri:  "foo.dart",
			want: "foo.template.dart",
		},
		{
			name: "nested path",
			uri:  "lib/src/widget.dart",
			want: "lib/src/widget.template.dart",
		},
		{
			name: "package uri",
			uri:  "package:example/example.dart",
			want: "package:example/example.template.dart",
		},
		{
			name: "multi dot name rewrites only the last extension",
			uri:  "foo.g.dart",
			want: "foo.g.template.dart",
		},
		{
			name:    "no separator is an error",
			uri:     "extensionless",
			wantErr: true,
		},
		{
			name:    "leading dot only is an error",
			uri:     ".hidden",
			wantErr: true,
		},
		{
			name:    "empty uri is an error",
			uri:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompanionURI(tt.uri, DefaultOutputExtension)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.CodeMalformedURI))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
