package translate

import "regexp"

// phraseOrder lists the phrase table keys in match order. Longer alert and
// action phrases come before single words so "High temperature alert" is
// replaced as a unit rather than word by word.
var phraseOrder = []string{
	"High temperature alert",
	"Low temperature alert",
	"High humidity alert",
	"High wind alert",
	"Smoke detected",
	"Gas leak detected",
	"Environmental monitoring",
	"All readings normal",
	"Please take precautions",
	"Secure loose objects",
	"Evacuate the area immediately",
	"Temperature",
	"Humidity",
	"Wind",
	"Level",
	"Alert",
}

// phrases maps each known English phrase to its translations by language
// name. Languages missing from an entry fall through to the basic
// "<Alert>: text" rendering.
var phrases = map[string]map[string]string{
	"High temperature alert": {
		"Spanish":  "Alerta de temperatura alta",
		"French":   "Alerte de température élevée",
		"German":   "Hochtemperaturalarm",
		"Italian":  "Allarme alta temperatura",
		"Russian":  "Предупреждение о высокой температуре",
		"Hindi":    "उच्च तापमान अलर्ट",
		"Telugu":   "అధిక ఉష్ణోగ్రత హెచ్చరిక",
		"Tamil":    "அதிக வெப்பநிலை எச்சரிக்கை",
		"Bengali":  "উচ্চ তাপমাত্রার সতর্কতা",
		"Arabic":   "تنبيه درجة حرارة عالية",
		"Chinese":  "高温警报",
		"Japanese": "高温警報",
		"Korean":   "고온 경보",
	},
	"Low temperature alert": {
		"Spanish":  "Alerta de temperatura baja",
		"French":   "Alerte de basse température",
		"German":   "Niedrigtemperaturalarm",
		"Italian":  "Allarme bassa temperatura",
		"Russian":  "Предупреждение о низкой температуре",
		"Hindi":    "निम्न तापमान अलर्ट",
		"Telugu":   "తక్కువ ఉష్ణోగ్రత హెచ్చరిక",
		"Tamil":    "குறைந்த வெப்பநிலை எச்சரிக்கை",
		"Bengali":  "নিম্ন তাপমাত্রার সতর্কতা",
		"Arabic":   "تنبيه درجة حرارة منخفضة",
		"Chinese":  "低温警报",
		"Japanese": "低温警報",
		"Korean":   "저온 경보",
	},
	"High humidity alert": {
		"Spanish":  "Alerta de humedad alta",
		"French":   "Alerte d'humidité élevée",
		"German":   "Hohe Luftfeuchtigkeitsalarm",
		"Italian":  "Allarme umidità elevata",
		"Russian":  "Предупреждение о высокой влажности",
		"Hindi":    "उच्च आर्द्रता अलर्ट",
		"Telugu":   "అధిక తేమ హెచ్చరిక",
		"Tamil":    "அதிக ஈரப்பதம் எச்சரிக்கை",
		"Bengali":  "উচ্চ আর্দ্রতার সতর্কতা",
		"Arabic":   "تنبيه رطوبة عالية",
		"Chinese":  "高湿度警报",
		"Japanese": "高湿度警報",
		"Korean":   "고습도 경보",
	},
	"High wind alert": {
		"Spanish":  "Alerta de viento fuerte",
		"French":   "Alerte de vent fort",
		"German":   "Starkwindalarm",
		"Italian":  "Allarme vento forte",
		"Russian":  "Предупреждение о сильном ветре",
		"Hindi":    "तेज हवा अलर्ट",
		"Telugu":   "బలమైన గాలి హెచ్చరిక",
		"Tamil":    "அதிக காற்று எச்சரிக்கை",
		"Bengali":  "প্রবল বাতাসের সতর্কতা",
		"Arabic":   "تنبيه رياح قوية",
		"Chinese":  "大风警报",
		"Japanese": "強風警報",
		"Korean":   "강풍 경보",
	},
	"Smoke detected": {
		"Spanish":  "Humo detectado",
		"French":   "Fumée détectée",
		"German":   "Rauch erkannt",
		"Italian":  "Fumo rilevato",
		"Russian":  "Обнаружен дым",
		"Hindi":    "धुआं का पता चला",
		"Telugu":   "పొగ గుర్తించబడింది",
		"Tamil":    "புகை கண்டறியப்பட்டது",
		"Bengali":  "ধোঁয়া সনাক্ত করা হয়েছে",
		"Arabic":   "تم اكتشاف دخان",
		"Chinese":  "检测到烟雾",
		"Japanese": "煙を検出",
		"Korean":   "연기 감지됨",
	},
	"Gas leak detected": {
		"Spanish":  "Fuga de gas detectada",
		"French":   "Fuite de gaz détectée",
		"German":   "Gasleck erkannt",
		"Italian":  "Rilevata perdita di gas",
		"Russian":  "Обнаружена утечка газа",
		"Hindi":    "गैस लीक का पता चला",
		"Telugu":   "గ్యాస్ లీకేజ్ గుర్తించబడింది",
		"Tamil":    "எரிவாயு கசிவு கண்டறியப்பட்டது",
		"Bengali":  "গ্যাস লিক সনাক্ত করা হয়েছে",
		"Arabic":   "تم اكتشاف تسرب غاز",
		"Chinese":  "检测到气体泄漏",
		"Japanese": "ガス漏れを検出",
		"Korean":   "가스 누출 감지됨",
	},
	"Environmental monitoring": {
		"Spanish":  "Monitoreo ambiental",
		"French":   "Surveillance environnementale",
		"German":   "Umweltüberwachung",
		"Italian":  "Monitoraggio ambientale",
		"Russian":  "Экологический мониторинг",
		"Hindi":    "पर्यावरण निगरानी",
		"Telugu":   "పర్యావరణ పర్యవేక్షణ",
		"Tamil":    "சுற்றுச்சூழல் கண்காணிப்பு",
		"Bengali":  "পরিবেশগত পর্যবেক্ষণ",
		"Arabic":   "المراقبة البيئية",
		"Chinese":  "环境监测",
		"Japanese": "環境監視",
		"Korean":   "환경 모니터링",
	},
	"All readings normal": {
		"Spanish":  "Todas las lecturas normales",
		"French":   "Toutes les lectures sont normales",
		"German":   "Alle Messwerte normal",
		"Italian":  "Tutte le letture normali",
		"Russian":  "Все показания в норме",
		"Hindi":    "सभी रीडिंग सामान्य",
		"Telugu":   "అన్ని రీడింగ్‌లు సాధారణం",
		"Tamil":    "அனைத்து அளவீடுகளும் சாதாரணம்",
		"Bengali":  "সমস্ত রিডিং স্বাভাবিক",
		"Arabic":   "جميع القراءات طبيعية",
		"Chinese":  "所有读数正常",
		"Japanese": "すべての測定値が正常",
		"Korean":   "모든 수치 정상",
	},
	"Please take precautions": {
		"Spanish":  "Por favor tome precauciones",
		"French":   "Veuillez prendre des précautions",
		"German":   "Bitte Vorsichtsmaßnahmen treffen",
		"Italian":  "Si prega di prendere precauzioni",
		"Russian":  "Пожалуйста, примите меры предосторожности",
		"Hindi":    "कृपया सावधानी बरतें",
		"Telugu":   "దయచేసి జాగ్రత్తలు తీసుకోండి",
		"Tamil":    "தயவுசெய்து முன்னெச்சரிக்கை நடவடிக்கைகள் எடுக்கவும்",
		"Bengali":  "অনুগ্রহ করে সতর্কতা অবলম্বন করুন",
		"Arabic":   "يرجى اتخاذ الاحتياطات",
		"Chinese":  "请采取预防措施",
		"Japanese": "予防措置を講じてください",
		"Korean":   "예방 조치를 취하십시오",
	},
	"Secure loose objects": {
		"Spanish":  "Asegure objetos sueltos",
		"French":   "Sécurisez les objets non fixés",
		"German":   "Lose Gegenstände sichern",
		"Italian":  "Fissare gli oggetti sciolti",
		"Russian":  "Закрепите незакрепленные предметы",
		"Hindi":    "ढीली वस्तुओं को सुरक्षित करें",
		"Telugu":   "వదులుగా ఉన్న వస్తువులను భద్రపరచండి",
		"Tamil":    "தளர்வான பொருட்களைப் பாதுகாக்கவும்",
		"Bengali":  "আলগা বস্তুগুলি সুরক্ষিত করুন",
		"Arabic":   "تأمين الأشياء المفكوكة",
		"Chinese":  "固定松散物品",
		"Japanese": "緩んだ物を固定してください",
		"Korean":   "느슨한 물건들을 고정하세요",
	},
	"Evacuate the area immediately": {
		"Spanish":  "Evacúe el área inmediatamente",
		"French":   "Évacuez la zone immédiatement",
		"German":   "Verlassen Sie sofort den Bereich",
		"Italian":  "Evacuare immediatamente l'area",
		"Russian":  "Немедленно покиньте территорию",
		"Hindi":    "तुरंत क्षेत्र खाली करें",
		"Telugu":   "వెంటనే ప్రాంతాన్ని ఖాళీ చేయండి",
		"Tamil":    "உடனடியாக பகுதியை காலி செய்யுங்கள்",
		"Bengali":  "অবিলম্বে এলাকা খালি করুন",
		"Arabic":   "إخلاء المنطقة فوراً",
		"Chinese":  "立即撤离该区域",
		"Japanese": "直ちにエリアから避難してください",
		"Korean":   "즉시 해당 지역을 대피하세요",
	},
	"Temperature": {
		"Spanish":  "Temperatura",
		"French":   "Température",
		"German":   "Temperatur",
		"Italian":  "Temperatura",
		"Russian":  "Температура",
		"Hindi":    "तापमान",
		"Telugu":   "ఉష్ణోగ్రత",
		"Tamil":    "வெப்பநிலை",
		"Bengali":  "তাপমাত্রা",
		"Arabic":   "درجة الحرارة",
		"Chinese":  "温度",
		"Japanese": "温度",
		"Korean":   "온도",
	},
	"Humidity": {
		"Spanish":  "Humedad",
		"French":   "Humidité",
		"German":   "Luftfeuchtigkeit",
		"Italian":  "Umidità",
		"Russian":  "Влажность",
		"Hindi":    "आर्द्रता",
		"Telugu":   "తేమ",
		"Tamil":    "ஈரப்பதம்",
		"Bengali":  "আর্দ্রতা",
		"Arabic":   "الرطوبة",
		"Chinese":  "湿度",
		"Japanese": "湿度",
		"Korean":   "습도",
	},
	"Wind": {
		"Spanish":  "Viento",
		"French":   "Vent",
		"German":   "Wind",
		"Italian":  "Vento",
		"Russian":  "Ветер",
		"Hindi":    "हवा",
		"Telugu":   "గాలి",
		"Tamil":    "காற்று",
		"Bengali":  "বাতাস",
		"Arabic":   "الرياح",
		"Chinese":  "风",
		"Japanese": "風",
		"Korean":   "바람",
	},
	"Level": {
		"Spanish":  "Nivel",
		"French":   "Niveau",
		"German":   "Stufe",
		"Italian":  "Livello",
		"Russian":  "Уровень",
		"Hindi":    "स्तर",
		"Telugu":   "స్థాయి",
		"Tamil":    "நிலை",
		"Bengali":  "স্তর",
		"Arabic":   "مستوى",
		"Chinese":  "水平",
		"Japanese": "レベル",
		"Korean":   "수준",
	},
	"Alert": {
		"Spanish":  "Alerta",
		"French":   "Alerte",
		"German":   "Alarm",
		"Italian":  "Allarme",
		"Russian":  "Тревога",
		"Hindi":    "अलर्ट",
		"Telugu":   "అలర్ట్",
		"Tamil":    "எச்சரிக்கை",
		"Bengali":  "সতর্কতা",
		"Arabic":   "تنبيه",
		"Chinese":  "警报",
		"Japanese": "警報",
		"Korean":   "경보",
	},
}

// phrasePatterns holds a case-insensitive matcher per phrase, compiled
// once at startup. Word boundaries keep short entries like "Alert" from
// matching inside already-substituted words such as "Alerta".
var phrasePatterns = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(phraseOrder))
	for _, p := range phraseOrder {
		m[p] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p) + `\b`)
	}
	return m
}()

// levelPattern matches "Level <n>" for the per-language grammar passes.
var levelPattern = regexp.MustCompile(`Level (\d+)`)

// grammarPasses are extra word-order fixups for languages where straight
// phrase substitution leaves awkward remnants.
var grammarPasses = map[string][][2]string{
	"Telugu": {
		{"Temperature", "ఉష్ణోగ్రత"},
		{"Humidity", "తేమ"},
		{"Wind", "గాలి"},
	},
	"Russian": {
		{"Temperature", "Температура"},
		{"Humidity", "Влажность"},
		{"Wind", "Ветер"},
	},
	"Arabic": {
		{"Temperature", "درجة الحرارة"},
		{"Humidity", "الرطوبة"},
		{"Wind", "الرياح"},
	},
}

// levelWord is the "Level $1" substitution used by the grammar passes.
var levelWord = map[string]string{
	"Telugu":  "స్థాయి $1",
	"Russian": "Уровень $1",
	"Arabic":  "المستوى $1",
}

// suffixAlertLanguages get "<text> - <Alert>" instead of "<Alert>: <text>"
// in the basic fallback rendering, matching their word order.
var suffixAlertLanguages = map[string]bool{
	"Japanese": true,
	"Korean":   true,
	"Turkish":  true,
}
