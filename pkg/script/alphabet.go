// CLAUDE:SUMMARY Alphabet resolver: curated letter inventories for historical scripts, with a native-name fallback.
package script

import "unicode"

// alphabets holds the curated letter inventory of each known language,
// in the case and form used for authentic rendering.
var alphabets = map[string]string{
	"grc":       "ΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩ",
	"grc-cls":   "ΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩ",
	"grc-koi":   "ΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩ",
	"lat":       "ABCDEFGHIKLMNOPQRSTVXYZ",
	"hbo":       "אבגדהוזחטיכלמנסעפצקרשת",
	"hbo-paleo": "אבגדהוזחטיכלמנסעפצקרשת",
	"ara":       "ابتثجحخدذرزسشصضطظعغفقكلمنهوي",
	"cu":        "АБВГДЕЖЗИІКЛМНОПРСТОУФХЦЧШЩЪЫЬѢЮѦѪѨѬѮѰѲѴ",
	"san":       "अआइईउऊऋॠऌॡएऐओऔकखगघङचछजझञटठडढणतथदधनपफबभमयरलवशषसह",
	"san-ved":   "अआइईउऊऋॠऌॡएऐओऔकखगघङचछजझञटठडढणतथदधनपफबभमयरलवशषसह",
	"pli":       "अआइईउऊएओकखगघङचछजझञटठडढणतथदधनपफबभमयरलवशसह",
	"non":       "AÁBDÐEÉFGHIÍJKLMNOPQRSTUÚVXYÝÞÆŒ",
	"ang":       "ABCDEFGHILMNOPRSTVXYZÆÐÞǷ",
	"cop":       "ⲀⲂⲄⲆⲈⲌⲎⲐⲒⲔⲖⲘⲚⲜⲞⲠⲢⲤⲦⲨⲪⲬⲮⲰϢϤϦϨϪϬϮ",
	"xcl":       "ԱԲԳԴԵԶԷԸԹԺԻԼԽԾԿՀՁՂՃՄՅՆՇՈՉՊՋՌՍՎՏՐՑՒՓՔՕՖ",
	"hye":       "ԱԲԳԴԵԶԷԸԹԺԻԼԽԾԿՀՁՂՃՄՅՆՇՈՉՊՋՌՍՎՏՐՑՒՓՔՕՖ",
	"kat":       "აბგდევზთიკლმნოპჟრსტუფქღყშჩცძწჭხჯჰ",
	"got":       "𐌰𐌱𐌲𐌳𐌴𐌵𐌶𐌷𐌸𐌹𐌺𐌻𐌼𐌽𐌾𐌿𐍀𐍁𐍂𐍃𐍄𐍅𐍆𐍇𐍈𐍉𐍊",
	"sga":       "ABCDEFGHILMNOPRSTUVÉÍÓÚ",
	"syc":       "ܐܒܓܕܗܘܙܚܛܝܟܠܡܢܣܥܦܨܩܪܫܬ",
	"arc":       "𐡀𐡁𐡂𐡃𐡄𐡅𐡆𐡇𐡈𐡉𐡊𐡋𐡌𐡍𐡎𐡏𐡐𐡑𐡒𐡓𐡔𐡕",
	"ave":       "𐬀𐬁𐬂𐬃𐬄𐬅𐬆𐬇𐬈𐬉𐬊𐬋𐬌𐬍𐬎𐬏𐬐𐬑𐬒𐬓𐬔𐬕𐬖𐬗𐬘𐬙𐬚𐬛𐬜𐬝𐬞",
	"lzh":       "一二三四五六七八九十人天地水火木金土日月山川",
	"ojp":       "あいうえおかきくけこさしすせそたちつてとなにぬねの",
	"bod":       "ཀཁགངཅཆཇཉཏཐདནཔཕབམཙཚཛཝཞཟའཡརལཤསཧཨ",
	"nci":       "ACEHILMNOPQTUVXYZ",
	"qwh":       "ACHIKLMNPQRSTUVWY",
	"akk":       "ABDEGHIKLMNPQRSŠTUVWYZṢṬ",
	"sux":       "ABDEGHIKLMNPRSTUVZ",
	"hit":       "ABDEGHIKLMNPRSTUVWZ",
	"pal":       "𐭠𐭡𐭢𐭣𐭤𐭥𐭦𐭧𐭨𐭩𐭪𐭫𐭬𐭭𐭮𐭯𐭰𐭱𐭲",
	"egy-old":   "ꜢBDEFGHḤIKMNPQRSŠTVWYZ",
	"egy":       "ꜢBDEFGHḤIKMNPQRSŠTVWYZ",
}

const basicLatin = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// minDerivedLetters is the smallest alphabet the native-name fallback
// may return.
const minDerivedLetters = 4

// AlphabetFor returns the ordered, distinct letters of a language.
// Unknown codes derive letters from the native name and fall back to
// basic Latin when fewer than four are found.
func AlphabetFor(code string, p Provider) []string {
	if lit, ok := alphabets[code]; ok {
		return letters(lit)
	}
	if derived := distinctLetters(NewRenderer(p).Config(code).NativeName); len(derived) >= minDerivedLetters {
		return derived
	}
	return letters(basicLatin)
}

// HasCuratedAlphabet reports whether code has a hand-curated alphabet.
func HasCuratedAlphabet(code string) bool {
	_, ok := alphabets[code]
	return ok
}

func letters(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func distinctLetters(s string) []string {
	var out []string
	seen := make(map[rune]bool)
	for _, r := range s {
		if !unicode.IsLetter(r) || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, string(r))
	}
	return out
}
