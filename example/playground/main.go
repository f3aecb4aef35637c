package main

import (
	"fmt"

	"github.com/akmonengine/plume"
	"github.com/akmonengine/plume/bound"
	"github.com/go-gl/mathgl/mgl64"
)

// DemoBoxes montre la construction et l'algèbre des boîtes
func DemoBoxes() {
	fmt.Println("📦 Démo: algèbre des boîtes")
	fmt.Println("==================================================")

	// Les coins peuvent être donnés dans n'importe quel ordre
	a := bound.NewBox(mgl64.Vec3{1, 5, 3}, mgl64.Vec3{4, 2, 6})
	fmt.Printf("  Boîte A (coins désordonnés): %v\n", a)
	fmt.Printf("  Dimensions: %.1f x %.1f x %.1f, volume %.1f\n",
		a.XLength(), a.YLength(), a.ZLength(), a.Volume())
	fmt.Printf("  Centre: %v\n", a.Center())

	b := bound.NewBoxCoords(0, 0, 0, 2, 3, 4)
	fmt.Printf("  Boîte B: %v\n", b)

	union := a.Union(b)
	fmt.Printf("  A + B (union): %v\n", union)

	if region, ok := a.Intersection(b); ok {
		fmt.Printf("  A ∩ B: %v (volume %.1f)\n", region, region.Volume())
	} else {
		fmt.Println("  A ∩ B: vide")
	}

	moved := b.Sub(mgl64.Vec3{1, 0, 0})
	fmt.Printf("  B - (1,0,0): %v\n", moved)
	fmt.Println()
}

// DemoPointCloud construit la boîte englobante d'un nuage de points
func DemoPointCloud() {
	fmt.Println("🔍 Démo: boîte englobante d'un nuage de points")
	fmt.Println("==================================================")

	points := []mgl64.Vec3{
		{1, 2, 3},
		{4, 5, 6},
		{-1, 0, 2},
		{2.5, -3, 4},
	}

	box := bound.NewBox(points[0], points[0])
	for _, p := range points[1:] {
		box.Extend(p)
	}

	fmt.Printf("  %d points -> %v\n", len(points), box)
	for _, p := range points {
		if !box.Contains(p) {
			fmt.Printf("  ⚠️  point %v hors de la boîte!\n", p)
		}
	}
	fmt.Println()
}

// DemoGrid recherche les paires de boîtes en contact via la grille spatiale
func DemoGrid() {
	fmt.Println("🗺️  Démo: recherche de paires dans la grille")
	fmt.Println("==================================================")

	// Rangée d'étagères espacées, plus deux caisses qui débordent
	boxes := []bound.Box{
		bound.NewBoxCoords(0, 0, 0, 1, 2, 1),     // étagère 0
		bound.NewBoxCoords(2, 0, 0, 3, 2, 1),     // étagère 1
		bound.NewBoxCoords(4, 0, 0, 5, 2, 1),     // étagère 2
		bound.NewBoxCoords(0.5, 0, 0, 1.5, 1, 1), // caisse contre l'étagère 0
		bound.NewBoxCoords(2.5, 0, 0, 4.5, 1, 1), // caisse entre les étagères 1 et 2
	}

	grid := plume.NewGrid(1.0, 64)
	for i, box := range boxes {
		grid.Insert(i, box)
	}

	pairs := grid.FindPairs(boxes)
	fmt.Printf("  %d paires en contact (séquentiel):\n", len(pairs))
	for _, pair := range pairs {
		fmt.Printf("    boîte %d ↔ boîte %d\n", pair.A, pair.B)
	}

	count := 0
	for range grid.FindPairsParallel(boxes, 4) {
		count++
	}
	fmt.Printf("  %d paires en contact (parallèle, 4 workers)\n", count)

	region := bound.NewBoxCoords(1.5, 0, 0, 3.5, 2, 1)
	fmt.Printf("  Boîtes dans la région %v: %v\n", region, grid.Query(boxes, region))
	fmt.Println()
}

// DemoZones suit un chariot qui traverse des zones surveillées
func DemoZones() {
	fmt.Println("🚧 Démo: zones surveillées")
	fmt.Println("==================================================")

	monitor := plume.NewMonitor()
	monitor.AddZone("chargement", bound.NewBoxCoords(0, 0, 0, 3, 3, 3))
	monitor.AddZone("danger", bound.NewBoxCoords(5, 0, 0, 8, 3, 3))

	fmt.Printf("  Zones: %v\n", monitor.Names())

	monitor.Subscribe(plume.ZONE_ENTER, func(event plume.Event) {
		e := event.(plume.ZoneEnterEvent)
		fmt.Printf("  ➡️  chariot %d entre dans %q\n", e.Object, e.Zone)
	})
	monitor.Subscribe(plume.ZONE_STAY, func(event plume.Event) {
		e := event.(plume.ZoneStayEvent)
		fmt.Printf("  ⏳ chariot %d toujours dans %q\n", e.Object, e.Zone)
	})
	monitor.Subscribe(plume.ZONE_EXIT, func(event plume.Event) {
		e := event.(plume.ZoneExitEvent)
		fmt.Printf("  ⬅️  chariot %d sort de %q\n", e.Object, e.Zone)
	})

	// Le chariot avance sur l'axe x, image par image
	cart := bound.NewBoxCoords(-2, 0, 1, -1, 1, 2)
	step := mgl64.Vec3{-1.5, 0, 0} // Sub translate par -v, donc avance de +1.5

	for frame := 0; frame < 8; frame++ {
		fmt.Printf("--- IMAGE %d --- chariot en %v\n", frame+1, cart.Center())
		monitor.Observe(1, cart)
		monitor.Flush()
		cart = cart.Sub(step)
	}

	fmt.Println("Parcours terminé!")
}

func main() {
	DemoBoxes()
	DemoPointCloud()
	DemoGrid()
	DemoZones()
}
