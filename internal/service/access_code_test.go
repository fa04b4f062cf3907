package service

import (
	"regexp"
	"testing"

	"photostudio-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func code(s string) *string { return &s }

func TestResolveAccess(t *testing.T) {
	tests := []struct {
		name     string
		isPublic bool
		stored   *string
		supplied *string
		want     AccessDecision
	}{
		{name: "public without code", isPublic: true, want: AccessGranted},
		{name: "public with wrong code", isPublic: true, stored: code("ABC123"), supplied: code("ZZZ999"), want: AccessGranted},
		{name: "public with any supplied code", isPublic: true, supplied: code("anything"), want: AccessGranted},
		{name: "private no code nothing supplied", want: AccessDenied},
		{name: "private no code something supplied", supplied: code("ABC123"), want: AccessDenied},
		{name: "private empty stored code", stored: code(""), supplied: code(""), want: AccessDenied},
		{name: "private code nothing supplied", stored: code("ABC123"), want: AccessDenied},
		{name: "private code wrong", stored: code("ABC123"), supplied: code("ABC124"), want: AccessDenied},
		{name: "private code case differs", stored: code("ABC123"), supplied: code("abc123"), want: AccessDenied},
		{name: "private code exact", stored: code("ABC123"), supplied: code("ABC123"), want: AccessGranted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gallery := &models.Gallery{IsPublic: tt.isPublic, AccessCode: tt.stored}
			assert.Equal(t, tt.want, ResolveAccess(gallery, tt.supplied))
		})
	}
}

func TestGenerateAccessCode(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z0-9]{6}$`)
	seen := make(map[string]struct{})

	for i := 0; i < 200; i++ {
		c, err := GenerateAccessCode()
		require.NoError(t, err)
		assert.Len(t, c, AccessCodeLength)
		assert.Regexp(t, pattern, c)
		seen[c] = struct{}{}
	}
	assert.Greater(t, len(seen), 190, "codes should not repeat often")
}

func TestBuildShareLink(t *testing.T) {
	id := uuid.MustParse("7c1f3c2e-9b7a-4d3e-8f5a-2b6c9d0e1f20")

	open := &models.Gallery{BaseModel: models.BaseModel{ID: id}, IsPublic: true}
	assert.Equal(t, "https://photos.example.com/gallery/"+id.String(), BuildShareLink("https://photos.example.com/", open))
	assert.Equal(t, "https://photos.example.com/gallery/"+id.String(), BuildShareLink("https://photos.example.com", open))

	locked := &models.Gallery{BaseModel: models.BaseModel{ID: id}, AccessCode: code("ABC123")}
	assert.Equal(t, "https://photos.example.com/gallery/"+id.String()+"?code=ABC123", BuildShareLink("https://photos.example.com", locked))
}
