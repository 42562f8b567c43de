// Package seed provides the default timetables loaded when no schedule has
// been persisted yet. They also seed the initial teaching-assignment roster.
package seed

import "github.com/alimaksum8/jadwal-darul-huda-api/internal/models"

func row(time string, slots [3][2]string) models.TimeSlotRow {
	return models.TimeSlotRow{
		Time:  time,
		SlotA: models.PeriodSlot{Subject: slots[0][0], Teacher: slots[0][1]},
		SlotB: models.PeriodSlot{Subject: slots[1][0], Teacher: slots[1][1]},
		SlotC: models.PeriodSlot{Subject: slots[2][0], Teacher: slots[2][1]},
	}
}

func allThree(time, subject, teacher string) models.TimeSlotRow {
	return row(time, [3][2]string{{subject, teacher}, {subject, teacher}, {subject, teacher}})
}

// MTsTimetable returns the default junior-tier (Kelas 7-9) weekly schedule.
func MTsTimetable() models.Timetable {
	return models.Timetable{
		"Senin": {
			allThree("07:00 - 07:40", "UPACARA BENDERA", "-"),
			row("07:40 - 08:20", [3][2]string{{"Matematika", "G1"}, {"Bahasa Indonesia", "G3"}, {"IPA Terpadu", "G5"}}),
			row("08:20 - 09:00", [3][2]string{{"Bahasa Indonesia", "G3"}, {"Matematika", "G1"}, {"IPS Terpadu", "G6"}}),
			allThree("09:00 - 09:20", "ISTIRAHAT", "-"),
			row("09:20 - 10:00", [3][2]string{{"IPA Terpadu", "G5"}, {"Bahasa Arab", "G7"}, {"Matematika", "G1"}}),
			row("10:00 - 10:40", [3][2]string{{"Fikih", "G8"}, {"IPA Terpadu", "G5"}, {"Bahasa Indonesia", "G3"}}),
		},
		"Selasa": {
			row("07:00 - 07:40", [3][2]string{{"Bahasa Inggris", "G2"}, {"Fikih", "G8"}, {"Akidah Akhlak", "G9"}}),
			row("07:40 - 08:20", [3][2]string{{"Akidah Akhlak", "G9"}, {"Bahasa Inggris", "G2"}, {"Fikih", "G8"}}),
			allThree("08:20 - 08:40", "ISTIRAHAT & SHOLAT", "-"),
			row("08:40 - 09:20", [3][2]string{{"IPS Terpadu", "G6"}, {"Quran Hadis", "G10"}, {"Bahasa Inggris", "G2"}}),
		},
		"Rabu": {
			row("07:00 - 07:40", [3][2]string{{"Quran Hadis", "G10"}, {"IPS Terpadu", "G6"}, {"Bahasa Arab", "G7"}}),
			row("07:40 - 08:20", [3][2]string{{"Bahasa Arab", "G7"}, {"Akidah Akhlak", "G9"}, {"Quran Hadis", "G10"}}),
			allThree("08:20 - 09:00", "BIMBINGAN KONSELING", "WALI"),
		},
		"Kamis": {
			row("07:00 - 07:40", [3][2]string{{"Matematika", "G1"}, {"IPA Terpadu", "G5"}, {"Bahasa Indonesia", "G3"}}),
			row("07:40 - 08:20", [3][2]string{{"SKI", "G11"}, {"Matematika", "G1"}, {"IPA Terpadu", "G5"}}),
		},
		"Jum'at": {
			allThree("07:00 - 07:40", "JUM'AT BERSIH & IMTAQ", "-"),
			row("07:40 - 08:20", [3][2]string{{"Penjaskes", "G12"}, {"SKI", "G11"}, {"Seni Budaya", "G13"}}),
		},
		"Sabtu": {
			allThree("07:00 - 08:20", "PRAMUKA", "PEMBINA"),
			allThree("08:20 - 09:00", "EKSKUL WAJIB", "OSIS"),
		},
	}
}

// MATimetable returns the default senior-tier (Kelas 10-12) weekly schedule.
func MATimetable() models.Timetable {
	return models.Timetable{
		"Senin": {
			allThree("07:00 - 07:40", "UPACARA BENDERA", "-"),
			row("07:40 - 08:20", [3][2]string{{"Fisika", "G14"}, {"Matematika", "G1"}, {"Kimia", "G15"}}),
			row("08:20 - 09:00", [3][2]string{{"Matematika", "G1"}, {"Kimia", "G15"}, {"Fisika", "G14"}}),
			allThree("09:00 - 09:20", "ISTIRAHAT", "-"),
			row("09:20 - 10:00", [3][2]string{{"Biologi", "G16"}, {"Bahasa Inggris", "G2"}, {"Matematika", "G1"}}),
		},
		"Selasa": {
			row("07:00 - 07:40", [3][2]string{{"Bahasa Indonesia", "G4"}, {"Fisika", "G14"}, {"Ekonomi", "G17"}}),
			row("07:40 - 08:20", [3][2]string{{"Kimia", "G15"}, {"Bahasa Indonesia", "G4"}, {"Biologi", "G16"}}),
			allThree("08:20 - 08:40", "ISTIRAHAT & SHOLAT", "-"),
			row("08:40 - 09:20", [3][2]string{{"Bahasa Inggris", "G2"}, {"Ekonomi", "G17"}, {"Bahasa Indonesia", "G4"}}),
		},
		"Rabu": {
			row("07:00 - 07:40", [3][2]string{{"Ekonomi", "G17"}, {"Biologi", "G16"}, {"Sosiologi", "G18"}}),
			row("07:40 - 08:20", [3][2]string{{"Sosiologi", "G18"}, {"Quran Hadis", "G10"}, {"Kimia", "G15"}}),
			allThree("08:20 - 09:00", "BIMBINGAN KONSELING", "WALI"),
		},
		"Kamis": {
			row("07:00 - 07:40", [3][2]string{{"Quran Hadis", "G10"}, {"Sosiologi", "G18"}, {"Bahasa Arab", "G7"}}),
			row("07:40 - 08:20", [3][2]string{{"Bahasa Arab", "G7"}, {"Penjaskes", "G12"}, {"Quran Hadis", "G10"}}),
		},
		"Jum'at": {
			allThree("07:00 - 07:40", "JUM'AT BERSIH & IMTAQ", "-"),
			row("07:40 - 08:20", [3][2]string{{"Penjaskes", "G12"}, {"Seni Budaya", "G13"}, {"Fisika", "G14"}}),
		},
		"Sabtu": {
			allThree("07:00 - 08:20", "PRAMUKA", "PEMBINA"),
			allThree("08:20 - 09:00", "EKSKUL WAJIB", "OSIS"),
		},
	}
}
