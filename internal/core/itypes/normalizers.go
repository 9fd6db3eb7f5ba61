package itypes

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// streetSuffixes lists USPS street suffixes. Each group starts with the full
// name followed by its accepted variants.
const streetSuffixes = `
alley,allee,ally,aly|anex,annex,annx,anx|arcade,arc|
avenue,av,aven,avenu,avn,avnue,ave|bayou,bayoo,byu|beach,bch|bend,bnd|
bluff,bluf,blf|bluffs,blfs|bottom,bot,bottm,btm|boulevard,boul,boulv,blvd|
branch,brnch,br|bridge,brdge,brg|brook,brk|brooks,brks|burg,bg|burgs,bgs|
bypass,bypa,bypas,byps,byp|camp,cmp,cp|canyon,canyn,cnyn,cyn|cape,cpe|
causeway,causwa,cswy|center,cen,cent,centr,centre,cnter,cntr,ctr|centers,ctrs|
circle,circ,circl,crcl,crcle,cir|circles,cirs|cliff,clf|cliffs,clfs|club,clb|
common,cmn|commons,cmns|corner,cor|corners,cors|course,crse|court,ct|cove,cv|
coves,cvs|creek,crk|crescent,crsent,crsnt,cres|crest,crst|crossing,crssng,xing|
crossroad,xrd|crossroads,xrds|curve,curv|dale,dl|dam,dm|divide,div,dvd,dv|
drive,driv,drv,dr|drives,drs|estate,est|estates,ests|
expressway,exp,expr,express,expw,expy|extension,extn,extnsn,ext|
extensions,exts|fall|falls,fls|ferry,frry,fry|field,fld|fields,flds|flat,flt|
flats,flts|ford,frd|fords,frds|forest,forests,frst|forge,forg,frg|forges,frgs|
fork,frk|forks,frks|fort,frt,ft|freeway,freewy,frway,frwy,fwy|
garden,gardn,grden,grdn,gdn|gardens,gdns|gateway,gatewy,gatway,gtway,gtwy|
glen,gln|glens,glns|green,grn|greens,grns|grove,grov,grv|groves,grvs|
harbor,harb,harbr,hrbor,hbr|harbors,hbrs|haven,hvn|heights,ht,hts|
highway,highwy,hiway,hiwy,hway,hwy|hill,hl|hills,hls|
hollow,hllw,hollows,holws,holw|inlet,inlt|island,islnd,is|islands,islnds,iss|
isle,isles|junction,jction,jctn,junctn,juncton,jct|junctions,jctns,jcts|
key,ky|keys,kys|knoll,knol,knl|knolls,knls|lake,lk|lakes,lks|land|light,lgt|
lights,lgts|loaf,lf|lock,lck|locks,lcks|lodge,ldge,lodg,ldg|loop,loops|
mall|manor,mnr|manors,mnrs|meadow,mdw|meadows,medows,mdws|mews|mill,ml|
mills,mls|mission,missn,mssn,msn|motorway,mtwy|mount,mnt,mt|
mountain,mntain,mntn,mountin,mtin,mtn|mountains,mntns,mtns|neck,nck|
orchard,orchrd,orch|oval,ovl|overpass,opas|park,prk,parks,prks|
parkway,parkwy,pkway,pky,parkways,pkwys,pkwy|pass|passage,psge|path,paths|
pike,pikes|pine,pne|pines,pnes|place,pl|plain,pln|plains,plns|
plaza,plza,plz|point,pt|points,pts|port,prt|ports,prts|prairie,prr,pr|
radial,rad,radiel,radl|ramp|ranch,ranches,rnchs,rnch|rapid,rpd|rapids,rpds|
rest,rst|ridge,rdge,rdg|ridges,rdgs|river,rvr,rivr,riv|road,rd|roads,rds|
route,rte|row|rue|run|shoal,shl|shoals,shls|shore,shoar,shr|shores,shoars,shrs|
skyway,skwy|spring,sprng,spng,spg|springs,spngs,sprngs,spgs|spur|spurs|
square,sqr,sqre,squ,sq|squares,sqrs,sqs|station,statn,stn,sta|
stravenue,strav,straven,stravn,strvn,strvnue,stra|stream,streme,strm|
street,strt,str,st|streets,sts|summit,sumitt,sumit,smt|terrace,terr,ter|
throughway,trwy|trace,traces,trce|track,tracks,trk,trks,trak|trafficway,trfy|
trail,trails,trls,trl|trailer,trlrs,trlr|tunnel,tunel,tunls,tunnels,tunnl,tunl|
turnpike,turnpk,trnpk,tpke|underpass,upas|union,un|unions,uns|
valley,vally,vlly,vly|valleys,vlys|viaduct,vdct,viadct,via|view,vw|views,vws|
village,vill,villag,villg,villiage,vlg|villages,vlgs|ville,vl|
vista,vist,vst,vsta,vis|walk,walks|wall|way,wy|ways,wys|well,wl|wells,wls
`

// SuffixToFull maps a lowercase street suffix variant to its full name.
var SuffixToFull = parseSuffixes(streetSuffixes)

// DirectionToAbbr maps a lowercase direction, full or abbreviated, to its
// USPS abbreviation.
var DirectionToAbbr = map[string]string{
	"north": "n", "east": "e", "south": "s", "west": "w",
	"n": "n", "e": "e", "s": "s", "w": "w",
	"northeast": "ne", "southeast": "se", "northwest": "nw", "southwest": "sw",
	"ne": "ne", "se": "se", "nw": "nw", "sw": "sw",
}

// ReDirection matches a direction in any case, with optional periods:
// "N", "n.", "North", "NE", "N.E.", "northeast".
var ReDirection = buildDirectionPattern()

var (
	wordRegex       = regexp.MustCompile(`[A-Za-z0-9_]+`)
	spacesRegex     = regexp.MustCompile(`\s{2,}`)
	notAvailRegex   = regexp.MustCompile(`\b[Nn]/?[Aa]\b`)
	ordinalSuffixes = []struct {
		re   *regexp.Regexp
		repl string
	}{
		{regexp.MustCompile(`([1])St`), "${1}st"},
		{regexp.MustCompile(`([2])Nd`), "${1}nd"},
		{regexp.MustCompile(`([3])Rd`), "${1}rd"},
		{regexp.MustCompile(`([04-9])Th`), "${1}th"},
	}
	titleCaser = cases.Title(language.Und)
)

func parseSuffixes(table string) map[string]string {
	out := make(map[string]string)
	table = strings.Join(strings.Fields(table), "")
	for _, group := range strings.Split(table, "|") {
		names := strings.Split(group, ",")
		for _, variant := range names[1:] {
			out[variant] = names[0]
		}
	}
	return out
}

func buildDirectionPattern() string {
	letter := func(s string) string {
		return "[" + strings.ToUpper(s[:1]) + strings.ToLower(s[:1]) + `]\.?`
	}
	rest := func(s string) string {
		return "(?:" + strings.ToUpper(s[1:]) + "|" + strings.ToLower(s[1:]) + ")?"
	}

	singles := []string{"north", "east", "south", "west"}
	compounds := [][2]string{{"north", "east"}, {"south", "east"}, {"north", "west"}, {"south", "west"}}

	var alts []string
	for _, d := range singles {
		alts = append(alts, letter(d)+rest(d))
	}
	for _, d := range compounds {
		alts = append(alts, letter(d[0])+rest(d[0])+letter(d[1])+rest(d[1]))
	}
	return strings.Join(alts, "|")
}

// replaceWords maps every whole word of s found in table.
func replaceWords(s string, table map[string]string) string {
	return wordRegex.ReplaceAllStringFunc(s, func(w string) string {
		if repl, ok := table[w]; ok {
			return repl
		}
		return w
	})
}

// CollapseSpaces trims s and collapses runs of whitespace into one space.
func CollapseSpaces(s string) string {
	return spacesRegex.ReplaceAllString(strings.TrimSpace(s), " ")
}

// StripNotAvailable removes "N/A" and "NA" markers and collapses whitespace.
func StripNotAvailable(s string) string {
	return CollapseSpaces(notAvailRegex.ReplaceAllString(s, ""))
}

// NormalizeDirection converts a direction to its upper case USPS abbreviation.
// "northeast" becomes "NE", "West" becomes "W".
func NormalizeDirection(s string) string {
	return strings.ToUpper(replaceWords(strings.ToLower(s), DirectionToAbbr))
}

// NormalizeStreet expands street suffixes to their full name and title-cases
// the result, keeping ordinals lower case: "west 20th str" becomes
// "West 20th Street".
func NormalizeStreet(s string) string {
	s = replaceWords(strings.ToLower(strings.TrimSpace(s)), SuffixToFull)
	s = titleCaser.String(s)
	for _, o := range ordinalSuffixes {
		s = o.re.ReplaceAllString(s, o.repl)
	}
	return s
}

// NormalizeSecondary collapses whitespace and upper-cases a secondary unit
// designator such as "apt 4b".
func NormalizeSecondary(s string) string {
	return strings.ToUpper(CollapseSpaces(s))
}
