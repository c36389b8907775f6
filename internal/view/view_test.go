// SPDX-License-Identifier: MIT
package view

import (
	"bytes"
	"errors"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/thatcatcamp/paleta/internal/export"
	"github.com/thatcatcamp/paleta/internal/urlcodec"
)

type fakeRenderer struct {
	calls [][]string
	err   error
}

func (f *fakeRenderer) Render(colors []string) ([]byte, error) {
	f.calls = append(f.calls, colors)
	if f.err != nil {
		return nil, f.err
	}
	return []byte(strings.Join(colors, ",")), nil
}

func newTestView(rawQuery string) (*View, *urlcodec.MemoryAddress, *fakeRenderer) {
	addr := urlcodec.NewMemoryAddress(rawQuery)
	r := &fakeRenderer{}
	return New(addr, r), addr, r
}

func TestLoadWithoutParamsKeepsDefault(t *testing.T) {
	v, addr, _ := newTestView("")
	if v.Load() {
		t.Error("Load should report nothing restored")
	}
	if !reflect.DeepEqual(v.Colors(), []string{"#3B82F6"}) {
		t.Errorf("expected default palette, got %v", v.Colors())
	}
	if addr.Replaces() != 0 {
		t.Error("address should not be rewritten when nothing was restored")
	}
}

func TestLoadRestoresColors(t *testing.T) {
	v, _, _ := newTestView("color1=%23FF0000&color2=%2300FF00&color3=%230000FF")
	if !v.Load() {
		t.Fatal("Load should restore colors")
	}
	want := []string{"#FF0000", "#00FF00", "#0000FF"}
	if !reflect.DeepEqual(v.Colors(), want) {
		t.Errorf("got %v, want %v", v.Colors(), want)
	}
	if v.Color(1) != "#00FF00" || v.Color(3) != "" {
		t.Errorf("Color(1) = %q, Color(3) = %q", v.Color(1), v.Color(3))
	}
}

func TestMutationsRewriteAddress(t *testing.T) {
	v, addr, _ := newTestView("")
	v.Load()

	v.Add()
	v.Set(1, "#FF0000")

	if addr.RawQuery() != "color1=%233B82F6&color2=%23FF0000" {
		t.Errorf("unexpected address %q", addr.RawQuery())
	}

	v.Remove(0)
	if addr.RawQuery() != "color1=%23FF0000" {
		t.Errorf("unexpected address after remove %q", addr.RawQuery())
	}
	if addr.Replaces() != 3 {
		t.Errorf("expected 3 replace writes, got %d", addr.Replaces())
	}
}

func TestRefusedMutationsLeaveAddressAlone(t *testing.T) {
	v, addr, _ := newTestView("")
	if v.Remove(0) {
		t.Error("removing the last color should be refused")
	}
	if v.Set(3, "#FFFFFF") {
		t.Error("out of range set should be refused")
	}
	if addr.Replaces() != 0 {
		t.Errorf("refused actions wrote the address %d times", addr.Replaces())
	}
}

func TestAddUntilFull(t *testing.T) {
	v, _, _ := newTestView("")
	for v.CanAdd() {
		v.Add()
	}
	if len(v.Colors()) != 5 {
		t.Fatalf("expected 5 colors, got %d", len(v.Colors()))
	}
	if v.Add() {
		t.Error("Add on full palette should be refused")
	}
	if v.Colors()[4] != "#000000" {
		t.Errorf("new colors should default to black, got %s", v.Colors()[4])
	}
}

func TestStateMachine(t *testing.T) {
	v, _, r := newTestView("")
	if v.State() != Editing || v.CanDownload() {
		t.Fatal("a fresh view should be Editing with nothing to download")
	}

	img, err := v.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if v.State() != Rendered || !v.CanDownload() {
		t.Fatal("expected Rendered after Generate")
	}
	if string(img.PNG) != "#3B82F6" {
		t.Errorf("unexpected image %q", img.PNG)
	}

	var buf bytes.Buffer
	if err := v.Download(&buf); err != nil {
		t.Fatalf("Download failed: %v", err)
	}

	v.Add()
	if v.State() != Editing {
		t.Error("editing should leave Rendered")
	}
	if v.CanDownload() {
		t.Error("download should be unavailable while Editing")
	}
	if err := v.Download(&buf); !errors.Is(err, ErrNotRendered) {
		t.Errorf("expected ErrNotRendered, got %v", err)
	}
	// the stale image is kept until the next generate
	if v.Image() == nil {
		t.Error("stale image should still be available")
	}
	if len(r.calls) != 1 {
		t.Errorf("edits must not trigger rendering, got %d renders", len(r.calls))
	}
}

func TestGenerateFailure(t *testing.T) {
	v, _, r := newTestView("")
	v.Generate()
	r.err = errors.New("no surface")

	if _, err := v.Generate(); err == nil {
		t.Fatal("expected error")
	}
	if v.State() != Editing || v.Image() != nil {
		t.Error("failed generate should leave no image")
	}
}

func TestShareLinkIgnoresImage(t *testing.T) {
	v, _, _ := newTestView("color1=%23FF0000")
	v.Load()

	before := v.ShareLink("https://example.org/", export.DefaultShareConfig())
	v.Generate()
	after := v.ShareLink("https://example.org/", export.DefaultShareConfig())
	if before != after {
		t.Error("share link changed after generating an image")
	}

	v.Set(0, "#00FF00")
	u, err := url.Parse(v.ShareLink("https://example.org/", export.DefaultShareConfig()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(u.Query().Get("text"), "color1=%2300FF00") {
		t.Errorf("share link should follow live colors: %s", u.Query().Get("text"))
	}
}

func TestStateString(t *testing.T) {
	if Editing.String() != "editing" || Rendered.String() != "rendered" {
		t.Error("unexpected state names")
	}
}
