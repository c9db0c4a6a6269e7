package participant

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"participant-registration/internal/model"
	"participant-registration/test"
	"participant-registration/tools"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExport(t *testing.T) {
	db, fx, r := setup(t)
	insert(t, db, fx, "Zoe", "Young", 1)
	insert(t, db, fx, "Anna", "Adams", 0)
	// 已转义的内容导出时还原
	require.NoError(t, db.Model(&model.Participant{}).
		Where("last_name = ?", "Adams").UpdateColumn("address", "1 &lt;Main&gt; St").Error)

	w := test.Get(t, r, "/index/participants/export")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, tools.ExcelContentType, w.Header().Get("Content-Type"))
	require.True(t, strings.HasPrefix(w.Header().Get("Content-Disposition"), `attachment; filename="participants_`))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{exportSheet}, f.GetSheetList())
	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"ID", "Last Name", "First Name", "Address", "Email", "High School"}, rows[0][:6])
	require.Equal(t, "Adams", rows[1][1])
	require.Equal(t, "1 <Main> St", rows[1][3])
	require.Equal(t, "Westfield High", rows[1][5])
	require.Equal(t, "Astronomy", rows[1][6])
	require.Equal(t, "Young", rows[2][1])
	require.Equal(t, "Central High", rows[2][5])
}

func TestExportEmpty(t *testing.T) {
	_, _, r := setup(t)
	w := test.Get(t, r, "/index/participants/export")
	require.Equal(t, http.StatusOK, w.Code)

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
