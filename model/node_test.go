package model_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/styled/model"
	"github.com/npillmayer/styled/style"
)

func TestLibraryLookup(t *testing.T) {
	lib := model.Library()
	info, ok := lib.Node("note")
	if !ok {
		t.Fatal("expected node type 'note' to be registered, isn't")
	}
	if info.Category != "testing" {
		t.Errorf("expected category 'testing', is %q", info.Category)
	}
	if _, ok := lib.Node("no-such-node"); ok {
		t.Error("expected lookup of unknown node type to fail, didn't")
	}
}

func TestRegistryFrozenAfterFirstUse(t *testing.T) {
	model.Library() // freezes
	defer func() {
		if recover() == nil {
			t.Error("expected registration after freeze to panic, didn't")
		}
	}()
	model.RegisterNode(&model.NodeInfo{Name: "latecomer"})
}

func TestSetStyleValidates(t *testing.T) {
	lib := model.Library()
	m := style.NewMap()
	err := lib.SetStyle(m, "styled-node", "marker", model.At(model.Str("–"), model.Detached))
	if err == nil {
		t.Error("expected SetStyle on unknown node type to fail, didn't")
	}
}

func TestSetStyleCastError(t *testing.T) {
	// registered via init in library_test-style setup below
	lib := model.Library()
	m := style.NewMap()
	err := lib.SetStyle(m, "note", "marker", model.At(model.Int(1), model.Detached))
	var cerr *model.CastError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected a cast error for wrong property value kind, got %v", err)
	}
	if err := lib.SetStyle(m, "note", "marker", model.At(model.Str("–"), model.Detached)); err != nil {
		t.Fatalf("expected a string to pass property validation, got %v", err)
	}
	if v, ok := m.Get(marker.Key()); !ok || v.(string) != "–" {
		t.Errorf("expected the typed value in the map, got %v", v)
	}
}
