package content

import (
	"context"
	"errors"

	"github.com/hidayahlabs/dhikrd/internal/common/random"
	"github.com/hidayahlabs/dhikrd/internal/models"
)

// Config holds configuration for the static content provider
type Config struct {
	// Random source for catalog picks
	Random random.Source
}

// provider implements the Provider interface from an in-process catalog.
// We could fetch these from a repository later if content becomes editable.
type provider struct {
	random random.Source
}

// New creates a new static content provider
func New(cfg *Config) (*provider, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Random == nil {
		return nil, errors.New("random source cannot be nil")
	}

	return &provider{
		random: cfg.Random,
	}, nil
}

// GetRandomInvocation returns one invocation suited to the period
func (p *provider) GetRandomInvocation(ctx context.Context, input *GetRandomInvocationInput) (*GetRandomInvocationOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	catalog, ok := invocationsByPeriod[input.Period]
	if !ok || len(catalog) == 0 {
		catalog = generalInvocations
	}

	picked := catalog[p.random.Pick(len(catalog))]

	return &GetRandomInvocationOutput{
		Invocation: &picked,
	}, nil
}

// GetPeriodDisplayName returns the session display name for the period
func (p *provider) GetPeriodDisplayName(ctx context.Context, input *GetPeriodDisplayNameInput) (*GetPeriodDisplayNameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name, ok := displayNames[input.Period]
	if !ok {
		name = "Community Dhikr"
	}

	return &GetPeriodDisplayNameOutput{Name: name}, nil
}

var displayNames = map[models.PrayerPeriod]string{
	models.PeriodFajrDhuhr:   "Morning Adhkar",
	models.PeriodDhuhrAsr:    "Midday Dhikr",
	models.PeriodAsrMaghrib:  "Afternoon Dhikr",
	models.PeriodMaghribIsha: "Evening Adhkar",
	models.PeriodIshaFajr:    "Night Dhikr",
}

// generalInvocations is the fallback catalog for unknown periods
var generalInvocations = []models.Invocation{
	{
		Text:            "سُبْحَانَ اللَّهِ وَبِحَمْدِهِ",
		Transliteration: "Subhan Allahi wa bihamdihi",
		Translation:     "Glory be to Allah and praise Him",
		Reference:       "Sahih al-Bukhari 6405",
	},
	{
		Text:            "لَا إِلَٰهَ إِلَّا اللَّهُ",
		Transliteration: "La ilaha illa Allah",
		Translation:     "There is no deity but Allah",
		Reference:       "Sahih Muslim 2691",
	},
	{
		Text:            "أَسْتَغْفِرُ اللَّهَ",
		Transliteration: "Astaghfirullah",
		Translation:     "I seek forgiveness from Allah",
		Reference:       "Sahih Muslim 2702",
	},
}

var invocationsByPeriod = map[models.PrayerPeriod][]models.Invocation{
	models.PeriodFajrDhuhr: {
		{
			Text:            "اللَّهُمَّ بِكَ أَصْبَحْنَا وَبِكَ أَمْسَيْنَا",
			Transliteration: "Allahumma bika asbahna wa bika amsayna",
			Translation:     "O Allah, by You we enter the morning and by You we enter the evening",
			Reference:       "Sunan at-Tirmidhi 3391",
		},
		{
			Text:            "سُبْحَانَ اللَّهِ وَبِحَمْدِهِ",
			Transliteration: "Subhan Allahi wa bihamdihi",
			Translation:     "Glory be to Allah and praise Him",
			Reference:       "Sahih Muslim 2692",
		},
		{
			Text:            "حَسْبِيَ اللَّهُ لَا إِلَٰهَ إِلَّا هُوَ",
			Transliteration: "Hasbiyallahu la ilaha illa huwa",
			Translation:     "Allah is sufficient for me; there is no deity but Him",
			Reference:       "Sunan Abi Dawud 5081",
		},
	},
	models.PeriodDhuhrAsr: {
		{
			Text:            "سُبْحَانَ اللَّهِ",
			Transliteration: "Subhan Allah",
			Translation:     "Glory be to Allah",
			Reference:       "Sahih al-Bukhari 6406",
		},
		{
			Text:            "الْحَمْدُ لِلَّهِ",
			Transliteration: "Alhamdulillah",
			Translation:     "All praise is due to Allah",
			Reference:       "Sahih Muslim 2731",
		},
	},
	models.PeriodAsrMaghrib: {
		{
			Text:            "أَسْتَغْفِرُ اللَّهَ وَأَتُوبُ إِلَيْهِ",
			Transliteration: "Astaghfirullaha wa atubu ilayh",
			Translation:     "I seek forgiveness from Allah and repent to Him",
			Reference:       "Sahih al-Bukhari 6307",
		},
		{
			Text:            "لَا حَوْلَ وَلَا قُوَّةَ إِلَّا بِاللَّهِ",
			Transliteration: "La hawla wa la quwwata illa billah",
			Translation:     "There is no power nor strength except through Allah",
			Reference:       "Sahih al-Bukhari 4205",
		},
	},
	models.PeriodMaghribIsha: {
		{
			Text:            "اللَّهُمَّ بِكَ أَمْسَيْنَا وَبِكَ أَصْبَحْنَا",
			Transliteration: "Allahumma bika amsayna wa bika asbahna",
			Translation:     "O Allah, by You we enter the evening and by You we enter the morning",
			Reference:       "Sunan at-Tirmidhi 3391",
		},
		{
			Text:            "اللَّهُمَّ صَلِّ عَلَى مُحَمَّدٍ",
			Transliteration: "Allahumma salli ala Muhammad",
			Translation:     "O Allah, send blessings upon Muhammad",
			Reference:       "Sahih Muslim 408",
		},
	},
	models.PeriodIshaFajr: {
		{
			Text:            "سُبْحَانَ اللَّهِ وَالْحَمْدُ لِلَّهِ وَلَا إِلَٰهَ إِلَّا اللَّهُ وَاللَّهُ أَكْبَرُ",
			Transliteration: "Subhan Allah walhamdulillah wa la ilaha illa Allah wallahu akbar",
			Translation:     "Glory be to Allah, praise be to Allah, there is no deity but Allah, Allah is the greatest",
			Reference:       "Sahih Muslim 2137",
		},
		{
			Text:            "أَسْتَغْفِرُ اللَّهَ",
			Transliteration: "Astaghfirullah",
			Translation:     "I seek forgiveness from Allah",
			Reference:       "Sahih Muslim 2702",
		},
	},
}
