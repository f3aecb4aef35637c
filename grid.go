package plume

import (
	"math"
	"sort"
	"sync"

	"github.com/akmonengine/plume/bound"
	"github.com/go-gl/mathgl/mgl64"
)

// ============================================================================
// Types
// ============================================================================

// CellKey - Coordonnées d'une cellule dans l'espace 3D
type CellKey struct {
	X, Y, Z int
}

// Cell - Conteneur d'indices de boîtes dans une cellule
type Cell struct {
	boxIndices []int
}

// Pair - Paire d'indices de boîtes qui se chevauchent, avec A < B
type Pair struct {
	A int
	B int
}

// Grid - Grille spatiale uniforme avec hashing pour la recherche de paires
//
// The grid does not own the boxes. Callers index their own []bound.Box slice,
// Insert each box under its index, and pass the same slice back to the search
// operations. After the boxes move, Clear and re-Insert.
type Grid struct {
	cellSize float64
	cells    []Cell
	cellMask int
}

// ============================================================================
// Constructeur
// ============================================================================

// NewGrid - Crée une nouvelle grille spatiale
//
// cellSize should be close to the typical box size; numCells is rounded up to
// the next power of two.
func NewGrid(cellSize float64, numCells int) *Grid {
	numCells = nextPowerOfTwo(numCells)

	cells := make([]Cell, numCells)
	for i := range cells {
		cells[i].boxIndices = make([]int, 0, 8)
	}

	return &Grid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
	}
}

// nextPowerOfTwo - Arrondit à la puissance de 2 supérieure
func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert - Insère une boîte dans toutes les cellules qu'elle occupe
func (g *Grid) Insert(boxIndex int, box bound.Box) {
	minCell := g.worldToCell(box.Min)
	maxCell := g.worldToCell(box.Max)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				cellKey := CellKey{x, y, z}
				cellIdx := g.hashCell(cellKey)

				g.cells[cellIdx].boxIndices = append(
					g.cells[cellIdx].boxIndices,
					boxIndex,
				)
			}
		}
	}
}

func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].boxIndices = g.cells[i].boxIndices[:0]
	}
}

func (g *Grid) SortCells() {
	for i := range g.cells {
		if len(g.cells[i].boxIndices) > 1 {
			sort.Ints(g.cells[i].boxIndices)
		}
	}
}

// FindPairs - Version séquentielle
//
// boxes must be the slice the grid was populated from. Each overlapping pair
// is reported once, as Pair{A, B} with A < B.
func (g *Grid) FindPairs(boxes []bound.Box) []Pair {
	pairs := make([]Pair, 0, len(boxes)/2)

	seen := make([]bool, len(boxes))
	clearSeen := make([]bool, len(boxes))

	// ========== BOUCLE SUR LES BOÎTES ==========
	for boxIdx := 0; boxIdx < len(boxes); boxIdx++ {
		copy(seen, clearSeen)

		boxA := boxes[boxIdx]

		// Trouver cellules occupées par boxA
		minCell := g.worldToCell(boxA.Min)
		maxCell := g.worldToCell(boxA.Max)

		// Parcourir ces cellules
		for x := minCell.X; x <= maxCell.X; x++ {
			for y := minCell.Y; y <= maxCell.Y; y++ {
				for z := minCell.Z; z <= maxCell.Z; z++ {
					cellKey := CellKey{x, y, z}
					cellIdx := g.hashCell(cellKey)

					// Tester contre toutes les boîtes dans cette cellule
					for _, otherIdx := range g.cells[cellIdx].boxIndices {
						// ========== ORDRE DÉTERMINISTE ==========
						if otherIdx <= boxIdx || seen[otherIdx] {
							continue // Évite doublons (A,B) et (B,A)
						}
						seen[otherIdx] = true

						if boxA.Intersects(boxes[otherIdx]) {
							pairs = append(pairs, Pair{A: boxIdx, B: otherIdx})
						}
					}
				}
			}
		}
	}

	return pairs
}

// FindPairsParallel - Version parallèle retournant un channel
func (g *Grid) FindPairsParallel(boxes []bound.Box, numWorkers int) <-chan Pair {
	if numWorkers < 1 {
		numWorkers = 1
	}

	var wg sync.WaitGroup
	pairsChan := make(chan Pair, numWorkers*10)

	boxesPerWorker := len(boxes) / numWorkers
	if boxesPerWorker == 0 {
		boxesPerWorker = 1
	}

	clearSeen := make([]bool, len(boxes))
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)

		startIdx := w * boxesPerWorker
		endIdx := min(startIdx+boxesPerWorker, len(boxes))
		if w == numWorkers-1 {
			endIdx = len(boxes)
		}

		go func(start, end int) {
			defer wg.Done()

			seen := make([]bool, len(boxes))
			for boxIdx := start; boxIdx < end; boxIdx++ {
				copy(seen, clearSeen)

				boxA := boxes[boxIdx]

				// Trouver cellules occupées par boxA
				minCell := g.worldToCell(boxA.Min)
				maxCell := g.worldToCell(boxA.Max)

				// Parcourir ces cellules
				for x := minCell.X; x <= maxCell.X; x++ {
					for y := minCell.Y; y <= maxCell.Y; y++ {
						for z := minCell.Z; z <= maxCell.Z; z++ {
							cellKey := CellKey{x, y, z}
							cellIdx := g.hashCell(cellKey)

							// Tester contre toutes les boîtes dans cette cellule
							for _, otherIdx := range g.cells[cellIdx].boxIndices {
								// Avoid duplicates
								if otherIdx <= boxIdx || seen[otherIdx] {
									continue
								}
								seen[otherIdx] = true

								if boxA.Intersects(boxes[otherIdx]) {
									pairsChan <- Pair{A: boxIdx, B: otherIdx}
								}
							}
						}
					}
				}
			}
		}(startIdx, endIdx)
	}

	go func() {
		wg.Wait()
		close(pairsChan)
	}()

	return pairsChan
}

// Query - Indices des boîtes qui chevauchent la région donnée
//
// boxes must be the slice the grid was populated from. The result is sorted
// in ascending index order.
func (g *Grid) Query(boxes []bound.Box, region bound.Box) []int {
	minCell := g.worldToCell(region.Min)
	maxCell := g.worldToCell(region.Max)

	seen := make([]bool, len(boxes))
	found := make([]int, 0, 8)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				cellKey := CellKey{x, y, z}
				cellIdx := g.hashCell(cellKey)

				for _, boxIdx := range g.cells[cellIdx].boxIndices {
					if seen[boxIdx] {
						continue
					}
					seen[boxIdx] = true

					// Le hash peut rassembler des cellules lointaines,
					// le test géométrique filtre les faux positifs
					if boxes[boxIdx].Intersects(region) {
						found = append(found, boxIdx)
					}
				}
			}
		}
	}

	sort.Ints(found)
	return found
}

// QueryAll - Exécute Query pour chaque région, réparties entre workersCount goroutines
func (g *Grid) QueryAll(boxes []bound.Box, regions []bound.Box, workersCount int) [][]int {
	found := make([][]int, len(regions))
	task(workersCount, regions, func(i int, region bound.Box) {
		found[i] = g.Query(boxes, region)
	})
	return found
}

// worldToCell - Convertit une position monde en coordonnées de cellule
func (g *Grid) worldToCell(pos mgl64.Vec3) CellKey {
	return CellKey{
		X: int(math.Floor(pos.X() / g.cellSize)),
		Y: int(math.Floor(pos.Y() / g.cellSize)),
		Z: int(math.Floor(pos.Z() / g.cellSize)),
	}
}

// hashCell - Hash une cellule vers un index dans l'array
func (g *Grid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & g.cellMask
}
