/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/cascade-design/cascade/cssvar"
	"github.com/cascade-design/cascade/resolver"
	"github.com/cascade-design/cascade/token"
	"github.com/cascade-design/cascade/transform"
)

func resolve(t *testing.T, set *token.Set) *token.Set {
	t.Helper()
	out, err := resolver.Resolve(set, transform.NewRegistry(), resolver.Options{})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	return out
}

func value(t *testing.T, set *token.Set, path string) token.Value {
	t.Helper()
	tok, ok := set.Get(path)
	if !ok {
		t.Fatalf("token %q missing from resolved set", path)
	}
	return tok.Value
}

func TestResolve_Idempotent(t *testing.T) {
	set := token.NewSet()
	set.Add("color.blue.50", token.Color("#3500ff"))
	set.Add("space.base", token.Dimension{Value: 4, Unit: "px"})
	set.Add("font.family", token.String("Inter"))
	set.Add("debug", token.Bool(false))
	set.Add("nothing", token.Null{})

	out := resolve(t, set)

	if out.Len() != set.Len() {
		t.Fatalf("resolved set has %d tokens, want %d", out.Len(), set.Len())
	}
	set.Entries(func(path string, tok *token.Token) bool {
		if !value(t, out, path).Equal(tok.Value) {
			t.Errorf("token %q changed: %v -> %v", path, tok.Value, value(t, out, path))
		}
		return true
	})
}

func TestResolve_AliasTransparency(t *testing.T) {
	set := token.NewSet()
	set.Add("color.blue.50", token.Color("#3500ff"))
	set.Add("color.brand.50", token.Alias("color.blue.50"))
	set.Add("color.accent", token.Alias("color.brand.50"))

	out := resolve(t, set)

	for _, path := range []string{"color.brand.50", "color.accent"} {
		if !value(t, out, path).Equal(value(t, out, "color.blue.50")) {
			t.Errorf("%s = %v, want value of color.blue.50", path, value(t, out, path))
		}
	}
}

func TestResolve_ForwardAliasMemoized(t *testing.T) {
	// The alias appears before its target in source order; resolving it
	// pulls the target into the output set, which the main loop then skips.
	set := token.NewSet()
	set.Add("color.brand.50", token.Alias("color.blue.50"))
	set.Add("color.blue.50", token.Color("#3500ff"))

	out := resolve(t, set)

	if !value(t, out, "color.brand.50").Equal(token.Color("#3500ff")) {
		t.Errorf("alias did not resolve forward: %v", value(t, out, "color.brand.50"))
	}
	if !value(t, out, "color.blue.50").Equal(token.Color("#3500ff")) {
		t.Errorf("target missing or altered: %v", value(t, out, "color.blue.50"))
	}
	// Output preserves the shape of the source, not walk order.
	paths := out.Paths()
	if paths[0] != "color.blue.50" && paths[0] != "color.brand.50" {
		t.Errorf("unexpected output paths: %v", paths)
	}
	if out.Len() != 2 {
		t.Errorf("output has %d tokens, want 2", out.Len())
	}
}

func TestResolve_CycleDetected(t *testing.T) {
	set := token.NewSet()
	set.Add("a", token.Alias("b"))
	set.Add("b", token.Alias("a"))

	_, err := resolver.Resolve(set, transform.NewRegistry(), resolver.Options{})
	if !errors.Is(err, resolver.ErrCycleDetected) {
		t.Fatalf("Resolve() error = %v, want ErrCycleDetected", err)
	}
	if !strings.Contains(err.Error(), "a -> b -> a") {
		t.Errorf("cycle chain missing from error: %v", err)
	}
}

func TestResolve_SelfCycle(t *testing.T) {
	set := token.NewSet()
	set.Add("a", token.Alias("a"))

	_, err := resolver.Resolve(set, transform.NewRegistry(), resolver.Options{})
	if !errors.Is(err, resolver.ErrCycleDetected) {
		t.Fatalf("Resolve() error = %v, want ErrCycleDetected", err)
	}
	if !strings.Contains(err.Error(), "a -> a") {
		t.Errorf("cycle chain missing from error: %v", err)
	}
}

func TestResolve_CycleThroughObjectMember(t *testing.T) {
	typography := token.NewObject()
	typography.Set("size", token.Alias("font.heading"))

	set := token.NewSet()
	set.Add("font.heading", typography)

	_, err := resolver.Resolve(set, transform.NewRegistry(), resolver.Options{})
	if !errors.Is(err, resolver.ErrCycleDetected) {
		t.Fatalf("Resolve() error = %v, want ErrCycleDetected", err)
	}
}

func TestResolve_TokenNotFound(t *testing.T) {
	set := token.NewSet()
	set.Add("a", token.Alias("b"))

	_, err := resolver.Resolve(set, transform.NewRegistry(), resolver.Options{})
	if !errors.Is(err, resolver.ErrTokenNotFound) {
		t.Fatalf("Resolve() error = %v, want ErrTokenNotFound", err)
	}
	for _, needle := range []string{`"b"`, `"a"`} {
		if !strings.Contains(err.Error(), needle) {
			t.Errorf("error %v does not mention %s", err, needle)
		}
	}
}

func TestResolve_ReferenceIsIndirection(t *testing.T) {
	set := token.NewSet()
	set.Add("base", token.Color("#112233"))
	set.Add("ref", token.Reference("base"))

	out := resolve(t, set)

	got := value(t, out, "ref")
	if !got.Equal(token.String("var(--base)")) {
		t.Errorf("ref = %v, want var(--base) indirection, not the target value", got)
	}
}

func TestResolve_ReferenceOptions(t *testing.T) {
	set := token.NewSet()
	set.Add("color.primary.500", token.Color("#112233"))
	set.Add("ref", token.Reference("color.primary.500"))

	out, err := resolver.Resolve(set, transform.NewRegistry(), resolver.Options{
		CSSVar: cssvar.Options{Prefix: "app", Separator: '_'},
	})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if !value(t, out, "ref").Equal(token.String("var(--app_color_primary_500)")) {
		t.Errorf("ref = %v", value(t, out, "ref"))
	}
}

func TestResolve_ReferenceTargetMustExist(t *testing.T) {
	set := token.NewSet()
	set.Add("ref", token.Reference("missing"))

	_, err := resolver.Resolve(set, transform.NewRegistry(), resolver.Options{})
	if !errors.Is(err, resolver.ErrTokenNotFound) {
		t.Fatalf("Resolve() error = %v, want ErrTokenNotFound", err)
	}
}

func TestResolve_ObjectMemberwise(t *testing.T) {
	typography := token.NewObject()
	typography.Set("family", token.Alias("font.family"))
	typography.Set("size", token.Dimension{Value: 16, Unit: "px"})
	typography.Set("weight", token.Number(700))

	set := token.NewSet()
	set.Add("font.family", token.String("Inter"))
	set.Add("font.heading", typography)

	out := resolve(t, set)

	got, ok := value(t, out, "font.heading").(token.Object)
	if !ok {
		t.Fatalf("font.heading resolved to %T, want Object", value(t, out, "font.heading"))
	}
	family, _ := got.Get("family")
	if !family.Equal(token.String("Inter")) {
		t.Errorf("family = %v, want Inter", family)
	}
	keys := got.Keys()
	want := []string{"family", "size", "weight"}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("member order changed: %v", keys)
			break
		}
	}
}

func TestResolve_TransformArithmetic(t *testing.T) {
	set := token.NewSet()
	set.Add("space.base", token.Dimension{Value: 4, Unit: "px"})
	set.Add("space.large", token.Transform{Steps: []token.Step{
		{Name: "alias", Args: []token.Value{token.String("space.base")}},
		{Name: "multiply", Args: []token.Value{token.Number(4)}},
	}})

	out := resolve(t, set)

	if !value(t, out, "space.large").Equal(token.Dimension{Value: 16, Unit: "px"}) {
		t.Errorf("space.large = %v, want 16px", value(t, out, "space.large"))
	}
}

func TestResolve_DivideByZeroAborts(t *testing.T) {
	set := token.NewSet()
	set.Add("n", token.Number(10))
	set.Add("broken", token.Transform{Steps: []token.Step{
		{Name: "alias", Args: []token.Value{token.String("n")}},
		{Name: "divide", Args: []token.Value{token.Number(0)}},
	}})

	_, err := resolver.Resolve(set, transform.NewRegistry(), resolver.Options{})
	if !errors.Is(err, transform.ErrTransformFailed) {
		t.Fatalf("Resolve() error = %v, want ErrTransformFailed", err)
	}
}

func TestResolve_TransformCycleThroughAliasStep(t *testing.T) {
	set := token.NewSet()
	set.Add("a", token.Transform{Steps: []token.Step{
		{Name: "alias", Args: []token.Value{token.String("b")}},
	}})
	set.Add("b", token.Alias("a"))

	_, err := resolver.Resolve(set, transform.NewRegistry(), resolver.Options{})
	if !errors.Is(err, resolver.ErrCycleDetected) {
		t.Fatalf("Resolve() error = %v, want ErrCycleDetected", err)
	}
}

func TestResolve_CommentInheritance(t *testing.T) {
	set := token.NewSet()
	set.Set("color.blue.50", &token.Token{
		Name:    "color.blue.50",
		Value:   token.Color("#3500ff"),
		Comment: "Primary brand hue",
	})
	set.Set("color.brand.50", &token.Token{
		Name:  "color.brand.50",
		Value: token.Alias("color.blue.50"),
	})
	set.Set("color.accent", &token.Token{
		Name:    "color.accent",
		Value:   token.Alias("color.blue.50"),
		Comment: "Keeps its own comment",
	})

	out := resolve(t, set)

	brand, _ := out.Get("color.brand.50")
	if brand.Comment != "Primary brand hue" {
		t.Errorf("brand comment = %q, want inherited target comment", brand.Comment)
	}
	accent, _ := out.Get("color.accent")
	if accent.Comment != "Keeps its own comment" {
		t.Errorf("accent comment = %q, want its own", accent.Comment)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	set := token.NewSet()
	set.Add("color.blue.50", token.Color("#3500ff"))
	set.Add("color.brand.50", token.Alias("color.blue.50"))
	set.Add("ref", token.Reference("color.brand.50"))
	set.Add("space.base", token.Dimension{Value: 4, Unit: "px"})
	set.Add("space.large", token.Transform{Steps: []token.Step{
		{Name: "alias", Args: []token.Value{token.String("space.base")}},
		{Name: "multiply", Args: []token.Value{token.Number(4)}},
	}})

	first := resolve(t, set)
	second := resolve(t, set)

	if len(first.Paths()) != len(second.Paths()) {
		t.Fatal("runs disagree on set size")
	}
	first.Entries(func(path string, tok *token.Token) bool {
		other, ok := second.Get(path)
		if !ok || !tok.Value.Equal(other.Value) {
			t.Errorf("runs disagree on %q", path)
		}
		return true
	})
}

func TestResolve_Scenario(t *testing.T) {
	set := token.NewSet()
	set.Add("color.blue.50", token.Color("#3500ff"))
	set.Add("color.brand.50", token.Alias("color.blue.50"))

	out := resolve(t, set)

	if !value(t, out, "color.brand.50").Equal(token.Color("#3500ff")) {
		t.Errorf("color.brand.50 = %v, want #3500ff", value(t, out, "color.brand.50"))
	}
}
