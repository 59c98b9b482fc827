package committer

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
)

func TestPlan_AddSkipsNil(t *testing.T) {
	p := NewPlan()
	assert.True(t, p.IsEmpty())

	p.Add(nil, spanner.Insert("t", []string{"a"}, []interface{}{1}), nil)
	p.Add(spanner.Delete("t", spanner.Key{1}))
	assert.Equal(t, 2, p.Len())
	assert.Len(t, p.Mutations(), 2)
}

func TestAdapter_EmptyPlanIsNoop(t *testing.T) {
	a := NewAdapter(nil)
	assert.NoError(t, a.Apply(context.Background(), nil))
	assert.NoError(t, a.Apply(context.Background(), NewPlan()))

	p := NewPlan()
	p.Add(spanner.Delete("t", spanner.Key{1}))
	assert.ErrorIs(t, a.Apply(context.Background(), p), ErrNoClient)
}
