package domain

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestProperty_SizesRoundTrip(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("comma-free sizes survive storage encoding", prop.ForAll(
		func(sizes []string) bool {
			got := SplitSizes(JoinSizes(sizes))
			if len(got) != len(sizes) {
				return false
			}
			for i := range sizes {
				if got[i] != sizes[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Identifier()).SuchThat(func(s []string) bool { return len(s) > 0 }),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestCategoryMatches(t *testing.T) {
	c := &Category{Name: "Women", Slug: "women"}

	assert.True(t, c.Matches(&Product{Category: "women"}))
	assert.True(t, c.Matches(&Product{Category: "WOMEN"}))
	assert.False(t, c.Matches(&Product{Category: "Women's"}))
}

func TestUserProfile(t *testing.T) {
	u := &User{ID: 3, Name: "Omar", Email: "omar@example.com", PasswordHash: "$2a$10$x", Role: RoleUser}

	assert.Equal(t, UserProfile{ID: 3, Name: "Omar", Email: "omar@example.com", Role: RoleUser}, u.Profile())
}
