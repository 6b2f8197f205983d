package hpo

import (
	"bytes"
	"context"
	"io"

	"github.com/hpoeval/hpo/internal/resource"
	"github.com/hpoeval/hpo/model"
	"github.com/hpoeval/hpo/persistence"
)

// CurrentBinaryVersion is the codec version ToBinary writes.
const CurrentBinaryVersion = persistence.CurrentVersion

// ToBinary encodes the ontology in the versioned binary format: terms carry
// only direct parents, genes and diseases carry only their direct (one-hop)
// term associations. Children, transitive closures, upward-closed
// associations, and information content are not written; FromBinary
// recomputes them via the same freeze procedure the builder uses.
func (o *Ontology) ToBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := o.WriteBinary(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteBinary encodes the ontology to w.
func (o *Ontology) WriteBinary(w io.Writer) error {
	return persistence.NewBinaryWriter(w).WriteSnapshot(o.snapshot())
}

// SaveToFile atomically writes the ontology's binary encoding to filename.
func (o *Ontology) SaveToFile(filename string) error {
	return persistence.SaveToFile(filename, o.WriteBinary)
}

// SaveToFileThrottled is SaveToFile with writes rate-limited through ctl's
// IO limiter, so a large dump does not starve foreground readers sharing
// the same disk.
func (o *Ontology) SaveToFileThrottled(ctx context.Context, filename string, ctl *resource.Controller) error {
	return persistence.SaveToFile(filename, func(w io.Writer) error {
		return o.WriteBinary(resource.NewRateLimitedWriter(ctx, w, ctl))
	})
}

// SaveToFileCompressed is SaveToFile with the binary encoding wrapped in a
// zstd frame, trading encode/decode time for a smaller file. Useful for
// archiving full ontology releases, whose gene/disease annotation lists
// compress well.
func (o *Ontology) SaveToFileCompressed(filename string) error {
	return persistence.SaveToFile(filename, func(w io.Writer) error {
		return persistence.WriteSnapshotCompressed(w, o.snapshot())
	})
}

func (o *Ontology) snapshot() persistence.Snapshot {
	s := persistence.Snapshot{
		Version:  CurrentBinaryVersion,
		Terms:    make([]persistence.TermSnapshot, o.terms.Len()),
		Genes:    make([]persistence.GeneSnapshot, o.genes.Len()),
		Diseases: make([]persistence.DiseaseSnapshot, o.diseases.Len()),
	}
	for i := 0; i < o.terms.Len(); i++ {
		n := o.terms.Get(i)
		s.Terms[i] = persistence.TermSnapshot{
			ID:            n.rec.ID,
			Name:          n.rec.Name,
			Parents:       append([]model.TermID(nil), n.parents.Iter()...),
			Obsolete:      n.rec.Obsolete,
			ReplacedBy:    n.rec.ReplacedBy,
			ModifierFlags: n.rec.ModifierFlags,
		}
	}

	for i := 0; i < o.genes.Len(); i++ {
		n := o.genes.Get(i)
		s.Genes[i] = persistence.GeneSnapshot{ID: n.rec.ID, Name: n.rec.Name, TermIDs: Gene{ont: o, idx: i}.DirectTerms().Iter()}
	}
	for i := 0; i < o.diseases.Len(); i++ {
		n := o.diseases.Get(i)
		s.Diseases[i] = persistence.DiseaseSnapshot{ID: n.rec.ID, Name: n.rec.Name, Source: n.rec.Source, TermIDs: Disease{ont: o, idx: i}.DirectTerms().Iter()}
	}
	return s
}

// FromBinary decodes an ontology previously produced by ToBinary, rebuilding
// it through a fresh Builder so that children, transitive closures,
// upward-closed associations, and information content are recomputed rather
// than trusted from the wire.
func FromBinary(data []byte) (*Ontology, error) {
	return ReadBinary(bytes.NewReader(data))
}

// ReadBinary decodes an ontology from r.
func ReadBinary(r io.Reader) (*Ontology, error) {
	snap, err := persistence.NewBinaryReader(r).ReadSnapshot()
	if err != nil {
		return nil, err
	}
	return ontologyFromSnapshot(snap)
}

// LoadFromFile reads a file written by Ontology.SaveToFile.
func LoadFromFile(filename string) (*Ontology, error) {
	var ont *Ontology
	err := persistence.LoadFromFile(filename, func(r io.Reader) error {
		var err error
		ont, err = ReadBinary(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ont, nil
}

// LoadFromFileThrottled is LoadFromFile with reads rate-limited through
// ctl's IO limiter.
func LoadFromFileThrottled(ctx context.Context, filename string, ctl *resource.Controller) (*Ontology, error) {
	var ont *Ontology
	err := persistence.LoadFromFile(filename, func(r io.Reader) error {
		var err error
		ont, err = ReadBinary(resource.NewRateLimitedReader(ctx, r, ctl))
		return err
	})
	if err != nil {
		return nil, err
	}
	return ont, nil
}

// LoadFromFileCompressed reads a file written by SaveToFileCompressed.
func LoadFromFileCompressed(filename string) (*Ontology, error) {
	var ont *Ontology
	err := persistence.LoadFromFile(filename, func(r io.Reader) error {
		snap, err := persistence.ReadSnapshotCompressed(r)
		if err != nil {
			return err
		}
		ont, err = ontologyFromSnapshot(snap)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ont, nil
}

func ontologyFromSnapshot(snap persistence.Snapshot) (*Ontology, error) {
	b := NewBuilder(WithAnnotationPolicy(PolicyStrict))
	for _, t := range snap.Terms {
		if err := b.AddTerm(TermInput{
			ID:            t.ID,
			Name:          t.Name,
			Parents:       t.Parents,
			Obsolete:      t.Obsolete,
			ReplacedBy:    t.ReplacedBy,
			ModifierFlags: t.ModifierFlags,
		}); err != nil {
			return nil, err
		}
	}
	for _, g := range snap.Genes {
		if err := b.AddGene(g.ID, g.Name); err != nil {
			return nil, err
		}
		for _, tid := range g.TermIDs {
			if err := b.AddGeneAnnotation(tid, g.ID); err != nil {
				return nil, err
			}
		}
	}
	for _, d := range snap.Diseases {
		if err := b.AddDisease(d.ID, d.Name, d.Source); err != nil {
			return nil, err
		}
		for _, tid := range d.TermIDs {
			if err := b.AddDiseaseAnnotation(tid, d.ID, d.Source); err != nil {
				return nil, err
			}
		}
	}
	return b.Freeze()
}
