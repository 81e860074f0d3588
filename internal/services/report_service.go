// report_service.go
//
// Hooomz OS — back-office data service for the Hooomz construction management application
// Copyright (c) 2026 Hooomz
//
// This file is part of hooomz-os.
// hooomz-os is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// hooomz-os is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with hooomz-os.
// If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// BuildProjectWorkbook assembles an xlsx export of one project: loops with
// their derived health, tasks, change orders, and time/expense totals.
func BuildProjectWorkbook(db *gorm.DB, projectID string) (*excelize.File, error) {
	project, err := GetProject(db, projectID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	overview := "Overview"
	if err := f.SetSheetName("Sheet1", overview); err != nil {
		return nil, err
	}
	rows := [][]interface{}{
		{"Project", project.Name},
		{"Client", project.ClientName},
		{"Address", project.Address},
		{"Phase", project.Phase},
		{"Phase group", project.PhaseGroup},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(overview, cell, &row); err != nil {
			return nil, err
		}
	}

	loopSheet := "Loops"
	if _, err := f.NewSheet(loopSheet); err != nil {
		return nil, err
	}
	header := []interface{}{"Loop", "Trade", "Status", "Health score", "Health color"}
	if err := f.SetSheetRow(loopSheet, "A1", &header); err != nil {
		return nil, err
	}
	loops, err := ListLoops(db, projectID)
	if err != nil {
		return nil, err
	}
	taskSheet := "Tasks"
	if _, err := f.NewSheet(taskSheet); err != nil {
		return nil, err
	}
	taskHeader := []interface{}{"Loop", "Task", "Status"}
	if err := f.SetSheetRow(taskSheet, "A1", &taskHeader); err != nil {
		return nil, err
	}
	taskRow := 2
	for i, loop := range loops {
		row := []interface{}{loop.Name, loop.Trade, loop.Status, loop.HealthScore, loop.HealthColor}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(loopSheet, cell, &row); err != nil {
			return nil, err
		}

		full, err := GetLoop(db, loop.ID)
		if err != nil {
			return nil, err
		}
		for _, task := range full.Tasks {
			row := []interface{}{loop.Name, task.Name, task.Status}
			cell, _ := excelize.CoordinatesToCellName(1, taskRow)
			if err := f.SetSheetRow(taskSheet, cell, &row); err != nil {
				return nil, err
			}
			taskRow++
		}
	}

	coSheet := "Change Orders"
	if _, err := f.NewSheet(coSheet); err != nil {
		return nil, err
	}
	coHeader := []interface{}{"Status", "Type", "Amount", "Description", "Affected loops"}
	if err := f.SetSheetRow(coSheet, "A1", &coHeader); err != nil {
		return nil, err
	}
	orders, err := ListChangeOrders(db, projectID)
	if err != nil {
		return nil, err
	}
	for i, order := range orders {
		row := []interface{}{
			order.Status,
			order.Type,
			float64(order.AmountCents) / 100,
			order.Description,
			len(order.LoopIDs()),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(coSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	// Time and expense totals on the overview sheet.
	entries, err := ListTimeEntries(db, projectID)
	if err != nil {
		return nil, err
	}
	var totalMinutes uint64
	for _, e := range entries {
		totalMinutes += e.Minutes
	}
	expenses, err := ListExpenses(db, projectID)
	if err != nil {
		return nil, err
	}
	var totalCents int64
	for _, e := range expenses {
		totalCents += e.AmountCents
	}
	totals := [][]interface{}{
		{"Hours logged", fmt.Sprintf("%.1f", float64(totalMinutes)/60)},
		{"Expenses", float64(totalCents) / 100},
	}
	for i, row := range totals {
		cell, _ := excelize.CoordinatesToCellName(1, len(rows)+i+2)
		if err := f.SetSheetRow(overview, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}
