package nav_test

import (
	"fmt"

	"github.com/matzehuels/focusgrid/pkg/geom"
	"github.com/matzehuels/focusgrid/pkg/nav"
)

func ExampleNavigator_basic() {
	// Two buttons side by side: right moves within the layout
	root := nav.NewRootBuilder("menu", 2, 1)
	_ = root.AddElement(geom.MustRect(0, 0, 0, 0), "play")
	_ = root.AddElement(geom.MustRect(1, 1, 0, 0), "quit")
	tree, _ := root.Build()
	n, _ := nav.NewNavigator(tree)

	res, _ := n.Navigate(nav.Move(nav.Right))
	fmt.Println(res.Kind, n.FocusID())
	res, _ = n.Navigate(nav.Move(nav.Right))
	fmt.Println(res.Kind, n.FocusID())
	// Output:
	// within quit
	// no-next-item quit
}

func ExampleNavigator_growable() {
	// A home screen with a shelf that games are added to at runtime
	root := nav.NewRootBuilder("Home", 4, 6)
	_ = root.AddElement(geom.MustRect(0, 0, 0, 0), "BTN@GAMES")
	_ = root.AddElement(geom.MustRect(1, 1, 0, 0), "BTN@RECENTLY_PLAYED")
	games := root.WithSublayout(geom.MustRect(0, 3, 1, 5), "Home@Games", 7, 10)
	_ = games.SetGrowable(1, 1, nav.GrowX)
	tree, _ := root.Build()
	n, _ := nav.NewNavigator(tree)

	shelf, _ := n.Lookup("Home@Games")
	for _, g := range []string{"celeste", "hades"} {
		_, _ = n.Insert(shelf, g)
	}

	for _, d := range []nav.Directive{nav.Move(nav.Down), nav.Move(nav.Right), nav.Move(nav.Up)} {
		res, _ := n.Navigate(d)
		fmt.Println(d, res.Kind, n.FocusID())
	}
	// Output:
	// down across celeste
	// right within hades
	// up across BTN@GAMES
}

func ExampleParseDirective() {
	for _, s := range []string{"up", "button:R1", "noop"} {
		d, _ := nav.ParseDirective(s)
		fmt.Println(d)
	}
	// Output:
	// up
	// button:R1
	// noop
}
