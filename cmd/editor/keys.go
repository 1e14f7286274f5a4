package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mapeditor/config"
)

// resolveKeys rewrites each binding to the name ebiten reports for that key
// ("2" becomes "Digit2"), so bindings compare equal to Key.String() at runtime.
func resolveKeys(keys config.KeysSpec) (config.KeysSpec, error) {
	out := keys
	seen := map[ebiten.Key]string{}
	for _, b := range []struct {
		action string
		name   *string
	}{
		{"select_wall", &out.SelectWall},
		{"select_goal", &out.SelectGoal},
		{"export", &out.Export},
	} {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(*b.name)); err != nil {
			return config.KeysSpec{}, fmt.Errorf("keys.%s: unknown key %q", b.action, *b.name)
		}
		if other, ok := seen[k]; ok {
			return config.KeysSpec{}, fmt.Errorf("key %q bound to both %s and %s", *b.name, other, b.action)
		}
		seen[k] = b.action
		*b.name = k.String()
	}
	return out, nil
}
