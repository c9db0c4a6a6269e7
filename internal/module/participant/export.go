package participant

import (
	"fmt"
	"html"
	"time"

	"participant-registration/internal/global/database"
	"participant-registration/internal/global/response"
	"participant-registration/internal/global/sentry/tracing"
	"participant-registration/internal/model"
	"participant-registration/tools"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Participants"

// exportRow 导出表格的一行，保存时转义过的文本在这里还原
type exportRow struct {
	ID              string    `excel:"ID"`
	LastName        string    `excel:"Last Name"`
	FirstName       string    `excel:"First Name"`
	Address         string    `excel:"Address"`
	Email           string    `excel:"Email"`
	HighSchool      string    `excel:"High School"`
	Interest1       string    `excel:"Interest 1"`
	Interest2       string    `excel:"Interest 2"`
	Interest3       string    `excel:"Interest 3"`
	Interest4       string    `excel:"Interest 4"`
	Interest5       string    `excel:"Interest 5"`
	ParticipantType string    `excel:"Participant Type"`
	TimeStamp       time.Time `excel:"Submitted At"`
}

func newExportRow(p *model.Participant) exportRow {
	return exportRow{
		ID:              p.ID,
		LastName:        html.UnescapeString(p.LastName),
		FirstName:       html.UnescapeString(p.FirstName),
		Address:         html.UnescapeString(p.Address),
		Email:           html.UnescapeString(p.Email),
		HighSchool:      p.HighSchool.Name,
		Interest1:       p.Interest1.Name,
		Interest2:       p.Interest2.Name,
		Interest3:       p.Interest3.Name,
		Interest4:       p.Interest4.Name,
		Interest5:       p.Interest5.Name,
		ParticipantType: html.UnescapeString(p.ParticipantType),
		TimeStamp:       p.TimeStamp,
	}
}

// Export 按列表页顺序导出全部报名为 xlsx
func Export(c *gin.Context) {
	span := tracing.StartSpan(c, "participant.export", "导出报名表")
	defer span.Finish()

	var list []model.Participant
	err := database.DB.WithContext(c.Request.Context()).
		Preload("HighSchool").
		Preload("Interest1").
		Preload("Interest2").
		Preload("Interest3").
		Preload("Interest4").
		Preload("Interest5").
		Order("last_name asc").
		Find(&list).Error
	if err != nil {
		failStore(c, err)
		return
	}

	rows := make([]exportRow, 0, len(list))
	for i := range list {
		rows = append(rows, newExportRow(&list[i]))
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn("关闭 excel 文件失败", "error", err)
		}
	}()
	if err := tools.ExportToExcel(f, exportSheet, rows); err != nil {
		log.Error("导出 excel 错误", "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	// 只保留导出的 sheet
	if err := f.DeleteSheet("Sheet1"); err != nil {
		log.Warn("删除默认 sheet 失败", "error", err)
	}

	filename := fmt.Sprintf("participants_%s.xlsx", time.Now().Format("20060102_150405"))
	if err := tools.SendWorkbook(c, f, filename); err != nil {
		log.Error("写出 excel 错误", "error", err)
	}
}
