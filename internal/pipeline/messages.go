package pipeline

// All user-facing copy, in Mongolian. Kept in one place so the wording
// stays consistent across flows.
const (
	msgSendPhotoFirst = "Эхлээд өөрийн зургаа илгээж үндсэн шинжилгээгээ хийнэ үү."
	msgPickGender     = "Зөвлөгөөг илүү тохируулж өгөхийн тулд сонгоно уу:"
	msgUpsell         = "Дэлгэрэнгүй зурагтай палитр, аксесуар/үс/арчилгааны зөвлөгөө, чатлах боломжийг нээхийн тулд төлбөртэй хувилбар шаардлагатай."
	msgPaymentCTA     = "Төлбөр төлөх сонголтууд:"
	msgChatUnlocked   = "Чатлах эрх нээгдлээ! Та нэмэлт асуулт асуух боломжтой."

	msgNoFace       = "Царай тод харагдсан, гэрэл сайн зураг илгээнэ үү."
	msgGenericRetry = "Түр зуурын алдаа гарлаа. Дахин оролдоно уу."

	msgChatLocked   = "Чатлах эрх нээгдээгүй байна. Төлбөртэй хувилбарт шилжинэ үү."
	msgChatLimit    = "Өнөөдрийн зөвлөгөөний лимит дууслаа. Дараа дахин асуугаарай."
	msgChatFallback = "Одоогоор зөвлөгөө өгөхөд алдаа гарлаа. Дахин оролдоно уу."

	genderOptionFemale = "Эмэгтэй"
	genderOptionMale   = "Эрэгтэй"
	paymentOption      = "Төлбөр төлөх"
)

func paidIntro(seasonName string) string {
	return "Таны " + seasonName + " улирлын дэлгэрэнгүй зөвлөгөө:"
}

func qualityMessage(reason string) string {
	return reason + ". Өөр зураг илгээнэ үү."
}
