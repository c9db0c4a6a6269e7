package tools

import (
	"fmt"
	"net/url"
	"reflect"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const (
	ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	excelTimeLayout  = "2006-01-02 15:04:05"
)

type excelColumn struct {
	index  []int
	header string
}

// excelColumns 按字段顺序收集导出列，嵌入结构体展开，`excel:"-"` 跳过
func excelColumns(t reflect.Type, parent []int) []excelColumn {
	var cols []excelColumn
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		idx := append(append([]int(nil), parent...), i)
		// 嵌入结构体即使类型未导出，其导出字段仍可访问
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			cols = append(cols, excelColumns(sf.Type, idx)...)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("excel")
		if tag == "-" {
			continue
		}
		if tag == "" {
			tag = sf.Name
		}
		cols = append(cols, excelColumn{index: idx, header: tag})
	}
	return cols
}

func excelValue(fv reflect.Value) any {
	if fv.Kind() == reflect.Ptr {
		if fv.IsNil() {
			return ""
		}
		fv = fv.Elem()
	}
	if t, ok := fv.Interface().(time.Time); ok {
		if t.IsZero() {
			return ""
		}
		return t.Format(excelTimeLayout)
	}
	return fv.Interface()
}

// ExportToExcel 把结构体切片写入 sheet，第一行是表头。空切片只写表头
func ExportToExcel(f *excelize.File, sheet string, data any) error {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("data %T is not a slice", data)
	}

	elemType := v.Type().Elem()
	if elemType.Kind() == reflect.Ptr {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		return fmt.Errorf("data %T is not a slice of structs", data)
	}

	if sheet == "" {
		sheet = "Sheet1"
	}
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)

	cols := excelColumns(elemType, nil)

	// 写表头
	for i, col := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col.header); err != nil {
			return err
		}
	}

	// 写数据行
	row := 2
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		if elem.Kind() == reflect.Ptr {
			if elem.IsNil() {
				continue
			}
			elem = elem.Elem()
		}
		for colIndex, col := range cols {
			cell, err := excelize.CoordinatesToCellName(colIndex+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, excelValue(elem.FieldByIndex(col.index))); err != nil {
				return err
			}
		}
		row++
	}
	return nil
}

// SendWorkbook 以附件形式输出工作簿
func SendWorkbook(c *gin.Context, f *excelize.File, displayName string) error {
	escaped := url.QueryEscape(displayName)

	c.Header("Content-Type", ExcelContentType)
	c.Header(
		"Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, escaped, escaped),
	)
	c.Header("Cache-Control", "must-revalidate")
	c.Status(200)
	return f.Write(c.Writer)
}
