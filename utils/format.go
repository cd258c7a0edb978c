package utils

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// rupiahPrinter 印尼语环境的数字格式化器
var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah 将整数金额格式化为印尼盾显示字符串
// 千位用点分隔，没有小数位，例如 98000 -> "Rp 98.000"
func FormatRupiah(amount int64) string {
	return rupiahPrinter.Sprintf("Rp %v", number.Decimal(amount))
}

// jakartaLocation 雅加达时区（WIB, UTC+7）
// 系统缺少时区数据库时退回固定偏移
var jakartaLocation = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}()

// ClockZone 页脚时钟显示的时区标签
const ClockZone = "WIB"

// FormatClock 页脚时钟的时间字符串，例如 "20:15:07"
func FormatClock(t time.Time) string {
	return t.In(jakartaLocation).Format("15:04:05")
}

// FormatClockDate 页脚时钟的日期字符串，例如 "2026-08-31"
func FormatClockDate(t time.Time) string {
	return t.In(jakartaLocation).Format("2006-01-02")
}
