package usecase

import "time"

// sameCalendarDay compara só ano/mês/dia, ignorando hora. Duas tarefas às
// 09:00 e às 17:00 do mesmo dia colidem do mesmo jeito.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// truncateToDay zera a hora, mantendo a localização do instante.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
