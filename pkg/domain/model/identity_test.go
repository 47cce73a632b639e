package model_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/bayesimpact/gitreview/pkg/domain/model"
)

func TestParseIdentityMap(t *testing.T) {
	t.Run("JSON object", func(t *testing.T) {
		m := gt.R1(model.ParseIdentityMap(`{"gcharbon":"guillaume","marief":"marie"}`)).NoError(t)
		gt.V(t, m["gcharbon"]).Equal("guillaume")
		gt.V(t, m["marief"]).Equal("marie")
	})

	t.Run("comma separated pairs", func(t *testing.T) {
		m := gt.R1(model.ParseIdentityMap("gcharbon=guillaume, marief=marie")).NoError(t)
		gt.V(t, m["gcharbon"]).Equal("guillaume")
		gt.V(t, m["marief"]).Equal("marie")
	})

	t.Run("empty input gives empty map", func(t *testing.T) {
		m := gt.R1(model.ParseIdentityMap("")).NoError(t)
		gt.V(t, len(m)).Equal(0)
	})

	t.Run("pair without separator is rejected", func(t *testing.T) {
		gt.R1(model.ParseIdentityMap("gcharbon")).Error(t)
	})
}

func TestIdentityMapLookup(t *testing.T) {
	identities := model.IdentityMap{"gcharbon": "guillaume"}

	t.Run("known login", func(t *testing.T) {
		login := gt.R1(identities.Lookup("gcharbon")).NoError(t)
		gt.V(t, login).Equal("guillaume")
	})

	t.Run("unknown login names the missing user", func(t *testing.T) {
		_, err := identities.Lookup("paulr")
		gt.Error(t, err)
		gt.True(t, strings.Contains(err.Error(), "Need to add GitHub user paulr"))
	})
}
