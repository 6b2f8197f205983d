package hpo

import (
	"fmt"
	"math"

	"github.com/hpoeval/hpo/internal/arena"
	"github.com/hpoeval/hpo/internal/assoc"
	"github.com/hpoeval/hpo/internal/closure"
	"github.com/hpoeval/hpo/internal/conv"
	"github.com/hpoeval/hpo/internal/idindex"
	"github.com/hpoeval/hpo/internal/resource"
	"github.com/hpoeval/hpo/model"
)

// BuilderPhase is a state in the Builder's Empty -> Collecting -> Frozen
// lifecycle. Frozen is terminal: no further Add* call or a second Freeze
// is legal once reached.
type BuilderPhase int

const (
	PhaseEmpty BuilderPhase = iota
	PhaseCollecting
	PhaseFrozen
)

func (p BuilderPhase) String() string {
	switch p {
	case PhaseEmpty:
		return "Empty"
	case PhaseCollecting:
		return "Collecting"
	case PhaseFrozen:
		return "Frozen"
	default:
		return "Unknown"
	}
}

// TermInput is a single ingested term stanza.
type TermInput struct {
	ID            model.TermID
	Name          string
	Parents       []model.TermID
	AltIDs        []model.TermID
	Obsolete      bool
	ReplacedBy    model.TermID
	ModifierFlags model.ModifierFlags
}

// Builder accumulates terms, genes, diseases, and their direct annotations
// during ingestion, then Freeze computes the transitive closure, the
// upward-closed association sets, and information content, and hands back
// an immutable Ontology. It is not safe for concurrent use: ingestion is
// single-writer, and the resulting Ontology is handed to many readers only
// after Freeze returns.
type Builder struct {
	cfg   builderConfig
	phase BuilderPhase

	termOrder      []model.TermID
	termByID       map[model.TermID]*model.TermRecord
	altToCanonical map[model.TermID]model.TermID

	geneOrder []model.GeneID
	geneByID  map[model.GeneID]*model.GeneRecord

	diseaseOrder []model.DiseaseID
	diseaseByID  map[model.DiseaseID]*model.DiseaseRecord

	directGenes    map[model.TermID][]model.GeneID
	directDiseases map[model.TermID][]model.DiseaseID
}

// NewBuilder creates a Builder in the Empty state.
func NewBuilder(opts ...Option) *Builder {
	cfg := defaultBuilderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Builder{
		cfg:            cfg,
		phase:          PhaseEmpty,
		termByID:       make(map[model.TermID]*model.TermRecord),
		altToCanonical: make(map[model.TermID]model.TermID),
		geneByID:       make(map[model.GeneID]*model.GeneRecord),
		diseaseByID:    make(map[model.DiseaseID]*model.DiseaseRecord),
		directGenes:    make(map[model.TermID][]model.GeneID),
		directDiseases: make(map[model.TermID][]model.DiseaseID),
	}
}

// Phase returns the builder's current lifecycle state.
func (b *Builder) Phase() BuilderPhase { return b.phase }

func (b *Builder) enterCollecting(op string) error {
	switch b.phase {
	case PhaseEmpty:
		b.phase = PhaseCollecting
		return nil
	case PhaseCollecting:
		return nil
	default:
		return &BuilderStateError{Op: op, Have: b.phase, Expected: PhaseCollecting}
	}
}

// AddTerm inserts a term stanza. It fails with a *DuplicateTermError if a
// term with the same id was already inserted.
func (b *Builder) AddTerm(in TermInput) error {
	if err := b.enterCollecting("AddTerm"); err != nil {
		return err
	}
	if _, exists := b.termByID[in.ID]; exists {
		return &DuplicateTermError{ID: in.ID}
	}

	rec := &model.TermRecord{
		ID:            in.ID,
		Name:          in.Name,
		Obsolete:      in.Obsolete,
		ReplacedBy:    in.ReplacedBy,
		ModifierFlags: in.ModifierFlags,
		RawParents:    append([]model.TermID(nil), in.Parents...),
	}
	b.termByID[in.ID] = rec
	b.termOrder = append(b.termOrder, in.ID)

	for _, alt := range in.AltIDs {
		b.altToCanonical[alt] = in.ID
	}
	return nil
}

// AddGene inserts a gene record. Re-adding the same id is a no-op.
func (b *Builder) AddGene(id model.GeneID, name string) error {
	if err := b.enterCollecting("AddGene"); err != nil {
		return err
	}
	if _, exists := b.geneByID[id]; exists {
		return nil
	}
	b.geneByID[id] = &model.GeneRecord{ID: id, Name: name}
	b.geneOrder = append(b.geneOrder, id)
	return nil
}

// AddDisease inserts a disease record. Re-adding the same id is a no-op.
func (b *Builder) AddDisease(id model.DiseaseID, name string, source model.Source) error {
	if err := b.enterCollecting("AddDisease"); err != nil {
		return err
	}
	if _, exists := b.diseaseByID[id]; exists {
		return nil
	}
	b.diseaseByID[id] = &model.DiseaseRecord{ID: id, Name: name, Source: source}
	b.diseaseOrder = append(b.diseaseOrder, id)
	return nil
}

// AddGeneAnnotation records a direct term-gene association row. Unknown
// genes are registered lazily with an empty name: the gene-annotation file
// format carries the symbol on the same row as the association, so in
// practice AddGene is never called separately, unlike AddTerm/is_a.
func (b *Builder) AddGeneAnnotation(termID model.TermID, geneID model.GeneID) error {
	if err := b.enterCollecting("AddGeneAnnotation"); err != nil {
		return err
	}
	if _, exists := b.geneByID[geneID]; !exists {
		if err := b.AddGene(geneID, ""); err != nil {
			return err
		}
	}
	b.directGenes[termID] = append(b.directGenes[termID], geneID)
	return nil
}

// AddDiseaseAnnotation records a direct term-disease association row.
func (b *Builder) AddDiseaseAnnotation(termID model.TermID, diseaseID model.DiseaseID, source model.Source) error {
	if err := b.enterCollecting("AddDiseaseAnnotation"); err != nil {
		return err
	}
	if _, exists := b.diseaseByID[diseaseID]; !exists {
		if err := b.AddDisease(diseaseID, "", source); err != nil {
			return err
		}
	}
	b.directDiseases[termID] = append(b.directDiseases[termID], diseaseID)
	return nil
}

// resolveAnnotationTerm follows an alt_id redirection (if any) and applies
// the builder's AnnotationPolicy to a gene/disease annotation row's target
// term: unknown ids fail under PolicyStrict and are dropped otherwise;
// obsolete targets are handled the same way.
func (b *Builder) resolveAnnotationTerm(id model.TermID, termIndexByID map[model.TermID]int) (int, bool, error) {
	if canon, ok := b.altToCanonical[id]; ok {
		id = canon
	}
	rec, ok := b.termByID[id]
	if !ok {
		if b.cfg.annotationPolicy == PolicyStrict {
			return 0, false, fmt.Errorf("%w: term %s", ErrUnknownTerm, id)
		}
		return 0, false, nil
	}
	if rec.Obsolete {
		if b.cfg.annotationPolicy == PolicyStrict {
			return 0, false, fmt.Errorf("%w: term %s", ErrObsoleteTerm, id)
		}
		return 0, false, nil
	}
	return termIndexByID[id], true, nil
}

// Freeze validates the collected data, computes the transitive closure and
// upward-closed associations, and returns the immutable Ontology. The
// builder transitions to Frozen and can no longer be mutated.
func (b *Builder) Freeze() (*Ontology, error) {
	switch b.phase {
	case PhaseFrozen:
		return nil, &BuilderStateError{Op: "Freeze", Have: b.phase, Expected: PhaseCollecting}
	case PhaseEmpty:
		b.phase = PhaseCollecting
	}

	n := len(b.termOrder)
	termIndexByID := make(map[model.TermID]int, n)
	for i, id := range b.termOrder {
		termIndexByID[id] = i
	}

	parentIdx := make([][]int, n)
	for i, id := range b.termOrder {
		rec := b.termByID[id]
		if rec.Obsolete {
			continue
		}
		for _, p := range rec.RawParents {
			pi, ok := termIndexByID[p]
			if !ok {
				return nil, &UnknownParentError{Term: id, Parent: p}
			}
			parentIdx[i] = append(parentIdx[i], pi)
		}
	}

	order, err := closure.TopoSortParentsFirst(n, func(i int) []int { return parentIdx[i] })
	if err != nil {
		return nil, fmt.Errorf("%w", ErrCycle)
	}

	parents := make([]HpoGroup, n)
	allParents := make([]HpoGroup, n)
	children := make([]HpoGroup, n)

	for _, i := range order {
		if b.termByID[b.termOrder[i]].Obsolete {
			continue
		}
		ids := make([]model.TermID, 0, len(parentIdx[i]))
		var ap HpoGroup
		for _, pi := range parentIdx[i] {
			pid := b.termOrder[pi]
			ids = append(ids, pid)
			ap = ap.Union(NewHpoGroup(pid))
			ap = ap.Union(allParents[pi])
			children[pi].Insert(b.termOrder[i])
		}
		parents[i] = NewHpoGroup(ids...)
		allParents[i] = ap
	}

	genesSet := make([]*assoc.Set, n)
	diseasesSet := make([]*assoc.Set, n)
	geneIndexByID := make(map[model.GeneID]int, len(b.geneOrder))
	for i, id := range b.geneOrder {
		geneIndexByID[id] = i
	}
	diseaseIndexByID := make(map[model.DiseaseID]int, len(b.diseaseOrder))
	for i, id := range b.diseaseOrder {
		diseaseIndexByID[id] = i
	}

	for i := range genesSet {
		genesSet[i] = assoc.New()
		diseasesSet[i] = assoc.New()
	}

	for rawTermID, geneIDs := range b.directGenes {
		ti, ok, err := b.resolveAnnotationTerm(rawTermID, termIndexByID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		for _, g := range geneIDs {
			gi, ok, err := b.resolveAnnotationGene(g, geneIndexByID)
			if err != nil {
				return nil, err
			}
			if ok {
				genesSet[ti].Add(uint32(gi))
			}
		}
	}
	for rawTermID, diseaseIDs := range b.directDiseases {
		ti, ok, err := b.resolveAnnotationTerm(rawTermID, termIndexByID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		for _, d := range diseaseIDs {
			di, ok, err := b.resolveAnnotationDisease(d, diseaseIndexByID)
			if err != nil {
				return nil, err
			}
			if ok {
				diseasesSet[ti].Add(uint32(di))
			}
		}
	}

	directGenesSet := make([]*assoc.Set, n)
	directDiseasesSet := make([]*assoc.Set, n)
	for i := range genesSet {
		directGenesSet[i] = genesSet[i].Clone()
		directDiseasesSet[i] = diseasesSet[i].Clone()
	}

	// Children-first propagation: reverse the parents-first order.
	for k := len(order) - 1; k >= 0; k-- {
		i := order[k]
		if b.termByID[b.termOrder[i]].Obsolete {
			continue
		}
		for _, pi := range parentIdx[i] {
			genesSet[pi].UnionWith(genesSet[i])
			diseasesSet[pi].UnionWith(diseasesSet[i])
		}
	}
	for i := range genesSet {
		genesSet[i].Freeze()
		diseasesSet[i].Freeze()
		directGenesSet[i].Freeze()
		directDiseasesSet[i].Freeze()
	}

	geneTermCount := make([]int, len(b.geneOrder))
	diseaseTermCount := make([]int, len(b.diseaseOrder))
	omimDiseaseIdx := make(map[int]bool)
	orphaDiseaseIdx := make(map[int]bool)
	for i, id := range b.diseaseOrder {
		switch b.diseaseByID[id].Source {
		case model.Omim:
			omimDiseaseIdx[i] = true
		case model.Orpha:
			orphaDiseaseIdx[i] = true
		}
	}

	omimTermCount := make([]int, n)
	orphaTermCount := make([]int, n)
	geneTermCountPerTerm := make([]int, n)

	geneTermSet := make([]*assoc.Set, len(b.geneOrder))
	diseaseTermSet := make([]*assoc.Set, len(b.diseaseOrder))
	geneDirectTermSet := make([]*assoc.Set, len(b.geneOrder))
	diseaseDirectTermSet := make([]*assoc.Set, len(b.diseaseOrder))
	for i := range geneTermSet {
		geneTermSet[i] = assoc.New()
		geneDirectTermSet[i] = assoc.New()
	}
	for i := range diseaseTermSet {
		diseaseTermSet[i] = assoc.New()
		diseaseDirectTermSet[i] = assoc.New()
	}

	for i := 0; i < n; i++ {
		for _, g := range genesSet[i].ToSlice() {
			geneTermCount[g]++
			geneTermSet[g].Add(uint32(i))
		}
		for _, g := range directGenesSet[i].ToSlice() {
			geneDirectTermSet[g].Add(uint32(i))
		}
		geneTermCountPerTerm[i] = genesSet[i].Cardinality()
		for _, d := range diseasesSet[i].ToSlice() {
			diseaseTermCount[d]++
			diseaseTermSet[d].Add(uint32(i))
			if omimDiseaseIdx[int(d)] {
				omimTermCount[i]++
			}
			if orphaDiseaseIdx[int(d)] {
				orphaTermCount[i]++
			}
		}
		for _, d := range directDiseasesSet[i].ToSlice() {
			diseaseDirectTermSet[d].Add(uint32(i))
		}
	}
	for i := range geneTermSet {
		geneTermSet[i].Freeze()
		geneDirectTermSet[i].Freeze()
	}
	for i := range diseaseTermSet {
		diseaseTermSet[i].Freeze()
		diseaseDirectTermSet[i].Freeze()
	}

	totalGenes := len(b.geneOrder)
	totalOmim, totalOrpha := 0, 0
	for _, id := range b.diseaseOrder {
		switch b.diseaseByID[id].Source {
		case model.Omim:
			totalOmim++
		case model.Orpha:
			totalOrpha++
		}
	}

	termArena := arena.New[termNode](n)
	for i := 0; i < n; i++ {
		id := b.termOrder[i]
		rec := b.termByID[id]
		ic := [model.NumFlavors]float64{
			model.FlavorOmim:  informationContent(omimTermCount[i], totalOmim),
			model.FlavorOrpha: informationContent(orphaTermCount[i], totalOrpha),
			model.FlavorGene:  informationContent(geneTermCountPerTerm[i], totalGenes),
		}
		termArena.Append(termNode{
			rec:            model.TermRecord{ID: rec.ID, Name: rec.Name, Obsolete: rec.Obsolete, ReplacedBy: rec.ReplacedBy, ModifierFlags: rec.ModifierFlags},
			parents:        parents[i],
			children:       children[i],
			allParents:     allParents[i],
			genes:          genesSet[i],
			diseases:       diseasesSet[i],
			directGenes:    directGenesSet[i],
			directDiseases: directDiseasesSet[i],
			ic:             ic,
		})
	}

	geneArena := arena.New[geneNode](len(b.geneOrder))
	for i, id := range b.geneOrder {
		geneArena.Append(geneNode{rec: *b.geneByID[id], termCount: geneTermCount[i], terms: geneTermSet[i], directTerms: geneDirectTermSet[i]})
	}

	diseaseArena := arena.New[diseaseNode](len(b.diseaseOrder))
	for i, id := range b.diseaseOrder {
		diseaseArena.Append(diseaseNode{rec: *b.diseaseByID[id], termCount: diseaseTermCount[i], terms: diseaseTermSet[i], directTerms: diseaseDirectTermSet[i]})
	}

	termTable := idindex.New()
	termNameIndex := make(map[string]int, n)
	for i := 0; i < n; i++ {
		idx, err := conv.IntToInt32(i)
		if err != nil {
			return nil, fmt.Errorf("term index: %w", err)
		}
		termTable.Set(uint32(b.termOrder[i]), idx)
		if !termArena.Get(i).rec.Obsolete {
			termNameIndex[termArena.Get(i).rec.Name] = i
		}
	}

	geneTable := idindex.New()
	geneNameIndex := make(map[string]int, len(b.geneOrder))
	for i, id := range b.geneOrder {
		idx, err := conv.IntToInt32(i)
		if err != nil {
			return nil, fmt.Errorf("gene index: %w", err)
		}
		geneTable.Set(uint32(id), idx)
		geneNameIndex[geneArena.Get(i).rec.Name] = i
	}

	diseaseTable := idindex.New()
	for i, id := range b.diseaseOrder {
		idx, err := conv.IntToInt32(i)
		if err != nil {
			return nil, fmt.Errorf("disease index: %w", err)
		}
		diseaseTable.Set(uint32(id), idx)
	}

	var reservedBytes int64
	if b.cfg.resourceCtl != nil {
		reservedBytes = int64(termArena.Stats().BytesReserved + geneArena.Stats().BytesReserved + diseaseArena.Stats().BytesReserved)
		if !b.cfg.resourceCtl.TryAcquireMemory(reservedBytes) {
			return nil, fmt.Errorf("%w: ontology needs %d bytes", resource.ErrMemoryLimitExceeded, reservedBytes)
		}
	}

	b.phase = PhaseFrozen

	return &Ontology{
		terms:         termArena,
		genes:         geneArena,
		diseases:      diseaseArena,
		termTable:     termTable,
		geneTable:     geneTable,
		diseaseTable:  diseaseTable,
		termNameIndex: termNameIndex,
		geneNameIndex: geneNameIndex,
		resourceCtl:   b.cfg.resourceCtl,
		reservedBytes: reservedBytes,
	}, nil
}

func (b *Builder) resolveAnnotationGene(id model.GeneID, idx map[model.GeneID]int) (int, bool, error) {
	i, ok := idx[id]
	if !ok {
		if b.cfg.annotationPolicy == PolicyStrict {
			return 0, false, fmt.Errorf("%w: gene %d", ErrUnknownTerm, id)
		}
		return 0, false, nil
	}
	return i, true, nil
}

func (b *Builder) resolveAnnotationDisease(id model.DiseaseID, idx map[model.DiseaseID]int) (int, bool, error) {
	i, ok := idx[id]
	if !ok {
		if b.cfg.annotationPolicy == PolicyStrict {
			return 0, false, fmt.Errorf("%w: disease %d", ErrUnknownTerm, id)
		}
		return 0, false, nil
	}
	return i, true, nil
}

// informationContent is -ln(count/total); 0 when count is 0, including the
// degenerate total == 0 case.
func informationContent(count, total int) float64 {
	if count == 0 || total == 0 {
		return 0
	}
	return -math.Log(float64(count) / float64(total))
}
