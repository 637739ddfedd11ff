package emit_test

import (
	"testing"

	"github.com/forgeline/tsbridge/internal/core/domain"
	"github.com/forgeline/tsbridge/internal/core/ports"
	"github.com/forgeline/tsbridge/internal/core/ports/mocks"
	"github.com/forgeline/tsbridge/internal/engine/emit"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestEmit_FullEmitPreferred(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mocks.NewMockSession(ctrl)

	store := domain.NewFileStore()
	store.Update("/p/a.ts", "const a: number = 1;")

	session.EXPECT().EmitOutput("/p/a.ts").Return([]ports.EmitArtifact{
		{Name: "/p/a.js", Text: "const a = 1;", SourceMap: "{}"},
	})

	p := emit.New(store, false)
	result := p.Emit(session, "/p/a.ts")

	assert.Equal(t, "const a = 1;", result.Text)
	assert.Equal(t, "{}", result.SourceMap)
}

func TestEmit_SelectsMatchingArtifact(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mocks.NewMockSession(ctrl)

	store := domain.NewFileStore()
	store.Update("/p/a.ts", "")

	session.EXPECT().EmitOutput("/p/a.ts").Return([]ports.EmitArtifact{
		{Name: "/p/other.js", Text: "other"},
		{Name: "/p/a.js", Text: "mine"},
	})

	result := emit.New(store, false).Emit(session, "/p/a.ts")
	assert.Equal(t, "mine", result.Text)
}

func TestEmit_FallbackWhenNoArtifacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mocks.NewMockSession(ctrl)

	store := domain.NewFileStore()
	store.Update("/p/a.d.ts", "declare const a: number;")

	session.EXPECT().EmitOutput("/p/a.d.ts").Return(nil)
	session.EXPECT().Transpile("/p/a.d.ts", "declare const a: number;").
		Return(ports.TranspileResult{Text: "transpiled"})

	result := emit.New(store, false).Emit(session, "/p/a.d.ts")
	assert.Equal(t, "transpiled", result.Text)
}

func TestEmit_TranspileOnlySkipsFullEmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mocks.NewMockSession(ctrl)

	store := domain.NewFileStore()
	store.Update("/p/a.ts", "const a = 1;")

	// EmitOutput must never be called in fast mode.
	session.EXPECT().Transpile("/p/a.ts", "const a = 1;").
		Return(ports.TranspileResult{Text: "fast"})

	result := emit.New(store, true).Emit(session, "/p/a.ts")
	assert.Equal(t, "fast", result.Text)
}

func TestEmit_CachesByVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mocks.NewMockSession(ctrl)

	store := domain.NewFileStore()
	store.Update("/p/a.ts", "v0")

	p := emit.New(store, false)

	session.EXPECT().EmitOutput("/p/a.ts").Return([]ports.EmitArtifact{
		{Name: "/p/a.js", Text: "out-v0"},
	})
	assert.Equal(t, "out-v0", p.Emit(session, "/p/a.ts").Text)

	// Same version: served from cache, no backend call.
	assert.Equal(t, "out-v0", p.Emit(session, "/p/a.ts").Text)

	// New version: backend consulted again.
	store.Update("/p/a.ts", "v1")
	session.EXPECT().EmitOutput("/p/a.ts").Return([]ports.EmitArtifact{
		{Name: "/p/a.js", Text: "out-v1"},
	})
	assert.Equal(t, "out-v1", p.Emit(session, "/p/a.ts").Text)
}
