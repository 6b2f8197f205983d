package hpo

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/hpoeval/hpo/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toyParsers implements StandardParsers over a trivial line-oriented
// format, standing in for a real hp.obo/genes_to_phenotype.txt/
// phenotype.hpoa parser: each line is "id<TAB>name<TAB>parent,parent,...".
func toyParsers() StandardParsers {
	return StandardParsers{
		ParseTerms: func(r io.Reader) ([]TermInput, error) {
			var out []TermInput
			sc := bufio.NewScanner(r)
			for sc.Scan() {
				fields := strings.Split(sc.Text(), "\t")
				id, _ := strconv.Atoi(fields[0])
				in := TermInput{ID: model.TermID(id), Name: fields[1]}
				if len(fields) > 2 && fields[2] != "" {
					for _, p := range strings.Split(fields[2], ",") {
						pid, _ := strconv.Atoi(p)
						in.Parents = append(in.Parents, model.TermID(pid))
					}
				}
				out = append(out, in)
			}
			return out, sc.Err()
		},
		ParseGeneAnnotations: func(r io.Reader) ([]GeneAnnotationRow, error) {
			var out []GeneAnnotationRow
			sc := bufio.NewScanner(r)
			for sc.Scan() {
				fields := strings.Split(sc.Text(), "\t")
				tid, _ := strconv.Atoi(fields[0])
				gid, _ := strconv.Atoi(fields[1])
				out = append(out, GeneAnnotationRow{TermID: model.TermID(tid), GeneID: model.GeneID(gid), GeneSymbol: fields[2]})
			}
			return out, sc.Err()
		},
		ParseDiseaseAnnotations: func(r io.Reader) ([]DiseaseAnnotationRow, error) {
			var out []DiseaseAnnotationRow
			sc := bufio.NewScanner(r)
			for sc.Scan() {
				fields := strings.Split(sc.Text(), "\t")
				tid, _ := strconv.Atoi(fields[0])
				did, _ := strconv.Atoi(fields[1])
				out = append(out, DiseaseAnnotationRow{TermID: model.TermID(tid), DiseaseID: model.DiseaseID(did), DiseaseName: fields[2], Source: model.Omim})
			}
			return out, sc.Err()
		},
	}
}

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644))
}

func TestFromStandard(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, StandardFilenames.Terms, "217\tXerostomia\t\n218\tHigh palate\t217\n")
	writeFile(t, dir, StandardFilenames.GeneAnnotations, "218\t1\tG1\n")
	writeFile(t, dir, StandardFilenames.DiseaseAnnotations, "217\t100\tSome disease\n")

	ont, err := FromStandard(dir, toyParsers())
	require.NoError(t, err)

	assert.Equal(t, 2, ont.NumTerms())
	assert.Equal(t, 1, ont.NumGenes())
	assert.Equal(t, 1, ont.NumDiseases())

	term217, ok := ont.GetTerm(217)
	require.True(t, ok)
	assert.Len(t, term217.Genes(), 1)
	assert.Len(t, term217.Diseases(), 1)
}

func TestFromStandardMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := FromStandard(dir, toyParsers())
	assert.Error(t, err)
}
