package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/bytesyntax/schedule-helper/pkg/core/schedule"
	"github.com/bytesyntax/schedule-helper/pkg/workbook"
)

// EmployeeFile is the name of the employee list inside paths.employeeData
const EmployeeFile = "employee.csv"

var employeeColumns = []string{"id", "phone", "role"}

// LoadEmployeeDirectory reads employee.csv from the configured employee data folder.
// A missing folder setting or file yields an empty directory: contact details are optional.
func (c *Config) LoadEmployeeDirectory() (schedule.StaticDirectory, error) {
	dir := ParsePath(c.Paths.EmployeeData)
	if dir == "" {
		return schedule.StaticDirectory{}, nil
	}

	f, err := os.Open(filepath.Join(dir, EmployeeFile))
	if os.IsNotExist(err) {
		return schedule.StaticDirectory{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open employee file: %w", err)
	}
	defer f.Close()

	return ReadEmployeeDirectory(f)
}

// LoadSettingsDirectory reads the settings workbook named by paths.settings.
// Unlike employee.csv the file must exist once it is configured.
func (c *Config) LoadSettingsDirectory() (schedule.StaticDirectory, error) {
	path := ParsePath(c.Paths.Settings)
	if path == "" {
		return schedule.StaticDirectory{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings file: %w", err)
	}
	defer f.Close()

	return workbook.LoadSettingsDirectory(f, path)
}

// ReadEmployeeDirectory parses an "id,phone,role" CSV with a header row.
// Every column is read as text so leading zeros in phone numbers survive.
func ReadEmployeeDirectory(r io.Reader) (schedule.StaticDirectory, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to parse employee file: %w", df.Err)
	}

	names := df.Names()
	for _, col := range employeeColumns {
		if !slices.Contains(names, col) {
			return nil, fmt.Errorf("employee file is missing column %q", col)
		}
	}

	ids := df.Col("id").Records()
	phones := df.Col("phone").Records()
	roles := df.Col("role").Records()

	directory := make(schedule.StaticDirectory, len(ids))
	for i, id := range ids {
		id = schedule.NormalizeEmployeeID(id)
		if id == "" {
			continue
		}
		directory[id] = schedule.Contact{Phone: phones[i], Role: roles[i]}
	}

	return directory, nil
}
