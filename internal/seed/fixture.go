package seed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Fixture is the on-disk seed format. Project manager and staff entries are
// 1-based indexes into Employees.
type Fixture struct {
	Employees []EmployeeFixture `yaml:"employees"`
	Projects  []ProjectFixture  `yaml:"projects"`
}

type EmployeeFixture struct {
	FirstName  string `yaml:"first_name"`
	LastName   string `yaml:"last_name"`
	MiddleName string `yaml:"middle_name"`
	Email      string `yaml:"email"`
}

type ProjectFixture struct {
	Name            string `yaml:"name"`
	CustomerCompany string `yaml:"customer_company"`
	ExecutorCompany string `yaml:"executor_company"`
	StartDate       Date   `yaml:"start_date"`
	EndDate         Date   `yaml:"end_date"`
	Priority        int    `yaml:"priority"`
	Manager         int    `yaml:"manager"`
	Staff           []int  `yaml:"staff"`
}

// Date accepts YYYY-MM-DD or RFC3339 and is always UTC.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: date must be a scalar", node.Line)
	}
	raw := strings.TrimSpace(node.Value)
	if t, err := time.ParseInLocation("2006-01-02", raw, time.UTC); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("line %d: invalid date %q", node.Line, raw)
	}
	d.Time = t.UTC()
	return nil
}

func Load(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f Fixture
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode seed fixture: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func LoadFile(path string) (*Fixture, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed fixture: %w", err)
	}
	defer fh.Close()
	return Load(fh)
}

// Validate checks every employee reference is in range.
func (f *Fixture) Validate() error {
	n := len(f.Employees)
	for i, p := range f.Projects {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("project %d: name required", i+1)
		}
		if p.Manager < 0 || p.Manager > n {
			return fmt.Errorf("project %q: manager index %d out of range [1,%d]", p.Name, p.Manager, n)
		}
		for _, s := range p.Staff {
			if s < 1 || s > n {
				return fmt.Errorf("project %q: staff index %d out of range [1,%d]", p.Name, s, n)
			}
		}
		if !p.EndDate.IsZero() && p.EndDate.Before(p.StartDate.Time) {
			return fmt.Errorf("project %q: end_date before start_date", p.Name)
		}
	}
	return nil
}
