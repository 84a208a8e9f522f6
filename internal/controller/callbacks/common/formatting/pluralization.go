package formatting

// pluralize выбирает форму слова для числа: одна, две-четыре, пять и больше
func pluralize(count int, one, few, many string) string {
	if count%10 == 1 && count%100 != 11 {
		return one
	}
	if count%10 >= 2 && count%10 <= 4 && (count%100 < 10 || count%100 >= 20) {
		return few
	}
	return many
}

// PluralizeTutors возвращает правильное склонение слова "репетитор"
func PluralizeTutors(count int) string {
	return pluralize(count, "репетитор", "репетитора", "репетиторов")
}

// PluralizeSlots возвращает правильное склонение слова "слот"
func PluralizeSlots(count int) string {
	return pluralize(count, "слот", "слота", "слотов")
}

// PluralizeReviews возвращает правильное склонение слова "отзыв"
func PluralizeReviews(count int) string {
	return pluralize(count, "отзыв", "отзыва", "отзывов")
}
