package domain_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/getlicense/internal/core/domain"
)

func TestRemoteError_RateLimited(t *testing.T) {
	tests := []struct {
		name string
		err  domain.RemoteError
		want bool
	}{
		{
			name: "github rate limit",
			err:  domain.RemoteError{StatusCode: http.StatusForbidden, Body: `{"message":"API rate limit exceeded for 1.2.3.4."}`},
			want: true,
		},
		{
			name: "plain forbidden",
			err:  domain.RemoteError{StatusCode: http.StatusForbidden, Body: "forbidden"},
			want: false,
		},
		{
			name: "not found mentioning rate limit",
			err:  domain.RemoteError{StatusCode: http.StatusNotFound, Body: "rate limit exceeded"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.RateLimited())
		})
	}
}

func TestRemoteError_Message(t *testing.T) {
	err := &domain.RemoteError{URL: "https://x/y", StatusCode: 500, Body: " boom \n"}
	assert.Equal(t, "remote returned status 500 for https://x/y: boom", err.Error())

	err = &domain.RemoteError{URL: "https://x/y", StatusCode: 502}
	assert.Equal(t, "remote returned status 502 for https://x/y", err.Error())
}

func TestSettings_ApplyDefaults(t *testing.T) {
	s := &domain.Settings{Source: domain.SourceSettings{Branch: "main"}}
	s.ApplyDefaults()

	assert.Equal(t, domain.DefaultAPIBase, s.Source.APIBase)
	assert.Equal(t, domain.DefaultOwner, s.Source.Owner)
	assert.Equal(t, domain.DefaultRepo, s.Source.Repo)
	assert.Equal(t, "main", s.Source.Branch)
}

func TestRunContext_Modified(t *testing.T) {
	rc := &domain.RunContext{}
	assert.False(t, rc.Modified())
	rc.MarkModified()
	assert.True(t, rc.Modified())
}
