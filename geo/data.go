package geo

import "github.com/Ciztek/pwe/schema"

// countryCentroids places each country at its approximate centroid. It
// backs the resolver whenever the primary table has no entry, so world
// map points still land somewhere sensible.
var countryCentroids = map[string]schema.Coordinate{
	"Afghanistan":                      {Lat: 33.93911, Lon: 67.709953},
	"Albania":                          {Lat: 41.153332, Lon: 20.168331},
	"Algeria":                          {Lat: 28.033886, Lon: 1.659626},
	"Andorra":                          {Lat: 42.546245, Lon: 1.601554},
	"Angola":                           {Lat: -11.202692, Lon: 17.873887},
	"Antigua and Barbuda":              {Lat: 17.060816, Lon: -61.796428},
	"Argentina":                        {Lat: -38.416097, Lon: -63.616672},
	"Armenia":                          {Lat: 40.069099, Lon: 45.038189},
	"Australia":                        {Lat: -25.274398, Lon: 133.775136},
	"Austria":                          {Lat: 47.516231, Lon: 14.550072},
	"Azerbaijan":                       {Lat: 40.143105, Lon: 47.576927},
	"Bahamas":                          {Lat: 25.03428, Lon: -77.39628},
	"Bahrain":                          {Lat: 25.930414, Lon: 50.637772},
	"Bangladesh":                       {Lat: 23.684994, Lon: 90.356331},
	"Barbados":                         {Lat: 13.193887, Lon: -59.543198},
	"Belarus":                          {Lat: 53.709807, Lon: 27.953389},
	"Belgium":                          {Lat: 50.503887, Lon: 4.469936},
	"Belize":                           {Lat: 17.189877, Lon: -88.49765},
	"Benin":                            {Lat: 9.30769, Lon: 2.315834},
	"Bhutan":                           {Lat: 27.514162, Lon: 90.433601},
	"Bolivia":                          {Lat: -16.290154, Lon: -63.588653},
	"Bosnia and Herzegovina":           {Lat: 43.915886, Lon: 17.679076},
	"Botswana":                         {Lat: -22.328474, Lon: 24.684866},
	"Brazil":                           {Lat: -14.235004, Lon: -51.92528},
	"Brunei":                           {Lat: 4.535277, Lon: 114.727669},
	"Bulgaria":                         {Lat: 42.733883, Lon: 25.48583},
	"Burkina Faso":                     {Lat: 12.238333, Lon: -1.561593},
	"Burundi":                          {Lat: -3.373056, Lon: 29.918886},
	"Cambodia":                         {Lat: 12.565679, Lon: 104.990963},
	"Cameroon":                         {Lat: 7.369722, Lon: 12.354722},
	"Canada":                           {Lat: 56.130366, Lon: -106.346771},
	"Cape Verde":                       {Lat: 16.002082, Lon: -24.013197},
	"Central African Republic":         {Lat: 6.611111, Lon: 20.939444},
	"Chad":                             {Lat: 15.454166, Lon: 18.732207},
	"Chile":                            {Lat: -35.675147, Lon: -71.542969},
	"China":                            {Lat: 35.86166, Lon: 104.195397},
	"Colombia":                         {Lat: 4.570868, Lon: -74.297333},
	"Comoros":                          {Lat: -11.875001, Lon: 43.872219},
	"Costa Rica":                       {Lat: 9.748917, Lon: -83.753428},
	"Croatia":                          {Lat: 45.1, Lon: 15.2},
	"Cuba":                             {Lat: 21.521757, Lon: -77.781167},
	"Cyprus":                           {Lat: 35.126413, Lon: 33.429859},
	"Czechia":                          {Lat: 49.817492, Lon: 15.472962},
	"Democratic Republic of the Congo": {Lat: -4.038333, Lon: 21.758664},
	"Denmark":                          {Lat: 56.26392, Lon: 9.501785},
	"Djibouti":                         {Lat: 11.825138, Lon: 42.590275},
	"Dominica":                         {Lat: 15.414999, Lon: -61.370976},
	"Dominican Republic":               {Lat: 18.735693, Lon: -70.162651},
	"Ecuador":                          {Lat: -1.831239, Lon: -78.183406},
	"Egypt":                            {Lat: 26.820553, Lon: 30.802498},
	"El Salvador":                      {Lat: 13.794185, Lon: -88.89653},
	"Equatorial Guinea":                {Lat: 1.650801, Lon: 10.267895},
	"Eritrea":                          {Lat: 15.179384, Lon: 39.782334},
	"Estonia":                          {Lat: 58.595272, Lon: 25.013607},
	"Eswatini":                         {Lat: -26.522503, Lon: 31.465866},
	"Ethiopia":                         {Lat: 9.145, Lon: 40.489673},
	"Fiji":                             {Lat: -16.578193, Lon: 179.414413},
	"Finland":                          {Lat: 61.92411, Lon: 25.748151},
	"France":                           {Lat: 46.227638, Lon: 2.213749},
	"Gabon":                            {Lat: -0.803689, Lon: 11.609444},
	"Gambia":                           {Lat: 13.443182, Lon: -15.310139},
	"Georgia":                          {Lat: 42.315407, Lon: 43.356892},
	"Germany":                          {Lat: 51.165691, Lon: 10.451526},
	"Ghana":                            {Lat: 7.946527, Lon: -1.023194},
	"Greece":                           {Lat: 39.074208, Lon: 21.824312},
	"Grenada":                          {Lat: 12.262776, Lon: -61.604171},
	"Guatemala":                        {Lat: 15.783471, Lon: -90.230759},
	"Guinea":                           {Lat: 9.945587, Lon: -9.696645},
	"Guinea-Bissau":                    {Lat: 11.803749, Lon: -15.180413},
	"Guyana":                           {Lat: 4.860416, Lon: -58.93018},
	"Haiti":                            {Lat: 18.971187, Lon: -72.285215},
	"Honduras":                         {Lat: 15.199999, Lon: -86.241905},
	"Hungary":                          {Lat: 47.162494, Lon: 19.503304},
	"Iceland":                          {Lat: 64.963051, Lon: -19.020835},
	"India":                            {Lat: 20.593684, Lon: 78.96288},
	"Indonesia":                        {Lat: -0.789275, Lon: 113.921327},
	"Iran":                             {Lat: 32.427908, Lon: 53.688046},
	"Iraq":                             {Lat: 33.223191, Lon: 43.679291},
	"Ireland":                          {Lat: 53.41291, Lon: -8.24389},
	"Israel":                           {Lat: 31.046051, Lon: 34.851612},
	"Italy":                            {Lat: 41.87194, Lon: 12.56738},
	"Ivory Coast":                      {Lat: 7.539989, Lon: -5.54708},
	"Jamaica":                          {Lat: 18.109581, Lon: -77.297508},
	"Japan":                            {Lat: 36.204824, Lon: 138.252924},
	"Jordan":                           {Lat: 30.585164, Lon: 36.238414},
	"Kazakhstan":                       {Lat: 48.019573, Lon: 66.923684},
	"Kenya":                            {Lat: -0.023559, Lon: 37.906193},
	"Kiribati":                         {Lat: -3.370417, Lon: -168.734039},
	"Kuwait":                           {Lat: 29.31166, Lon: 47.481766},
	"Kyrgyzstan":                       {Lat: 41.20438, Lon: 74.766098},
	"Laos":                             {Lat: 19.85627, Lon: 102.495496},
	"Latvia":                           {Lat: 56.879635, Lon: 24.603189},
	"Lebanon":                          {Lat: 33.854721, Lon: 35.862285},
	"Lesotho":                          {Lat: -29.609988, Lon: 28.233608},
	"Liberia":                          {Lat: 6.428055, Lon: -9.429499},
	"Libya":                            {Lat: 26.3351, Lon: 17.228331},
	"Liechtenstein":                    {Lat: 47.166, Lon: 9.555373},
	"Lithuania":                        {Lat: 55.169438, Lon: 23.881275},
	"Luxembourg":                       {Lat: 49.815273, Lon: 6.129583},
	"Madagascar":                       {Lat: -18.766947, Lon: 46.869107},
	"Malawi":                           {Lat: -13.254308, Lon: 34.301525},
	"Malaysia":                         {Lat: 4.210484, Lon: 101.975766},
	"Maldives":                         {Lat: 3.202778, Lon: 73.22068},
	"Mali":                             {Lat: 17.570692, Lon: -3.996166},
	"Malta":                            {Lat: 35.937496, Lon: 14.375416},
	"Marshall Islands":                 {Lat: 7.131474, Lon: 171.184478},
	"Mauritania":                       {Lat: 21.00789, Lon: -10.940835},
	"Mauritius":                        {Lat: -20.348404, Lon: 57.552152},
	"Mexico":                           {Lat: 23.634501, Lon: -102.552784},
	"Micronesia":                       {Lat: 7.425554, Lon: 150.550812},
	"Moldova":                          {Lat: 47.411631, Lon: 28.369885},
	"Monaco":                           {Lat: 43.750298, Lon: 7.412841},
	"Mongolia":                         {Lat: 46.862496, Lon: 103.846656},
	"Montenegro":                       {Lat: 42.708678, Lon: 19.37439},
	"Morocco":                          {Lat: 31.791702, Lon: -7.09262},
	"Mozambique":                       {Lat: -18.665695, Lon: 35.529562},
	"Myanmar":                          {Lat: 21.913965, Lon: 95.956223},
	"Namibia":                          {Lat: -22.95764, Lon: 18.49041},
	"Nauru":                            {Lat: -0.522778, Lon: 166.931503},
	"Nepal":                            {Lat: 28.394857, Lon: 84.124008},
	"Netherlands":                      {Lat: 52.132633, Lon: 5.291266},
	"New Zealand":                      {Lat: -40.900557, Lon: 174.885971},
	"Nicaragua":                        {Lat: 12.865416, Lon: -85.207229},
	"Niger":                            {Lat: 17.607789, Lon: 8.081666},
	"Nigeria":                          {Lat: 9.081999, Lon: 8.675277},
	"North Korea":                      {Lat: 40.339852, Lon: 127.510093},
	"North Macedonia":                  {Lat: 41.608635, Lon: 21.745275},
	"Norway":                           {Lat: 60.472024, Lon: 8.468946},
	"Oman":                             {Lat: 21.512583, Lon: 55.923255},
	"Pakistan":                         {Lat: 30.375321, Lon: 69.345116},
	"Palau":                            {Lat: 7.51498, Lon: 134.58252},
	"Panama":                           {Lat: 8.537981, Lon: -80.782127},
	"Papua New Guinea":                 {Lat: -6.314993, Lon: 143.95555},
	"Paraguay":                         {Lat: -23.442503, Lon: -58.443832},
	"Peru":                             {Lat: -9.189967, Lon: -75.015152},
	"Philippines":                      {Lat: 12.879721, Lon: 121.774017},
	"Poland":                           {Lat: 51.919438, Lon: 19.145136},
	"Portugal":                         {Lat: 39.399872, Lon: -8.224454},
	"Qatar":                            {Lat: 25.354826, Lon: 51.183884},
	"Republic of the Congo":            {Lat: -0.228021, Lon: 15.827659},
	"Romania":                          {Lat: 45.943161, Lon: 24.96676},
	"Russia":                           {Lat: 61.52401, Lon: 105.318756},
	"Rwanda":                           {Lat: -1.940278, Lon: 29.873888},
	"Saint Kitts and Nevis":            {Lat: 17.357822, Lon: -62.782998},
	"Saint Lucia":                      {Lat: 13.909444, Lon: -60.978893},
	"Saint Vincent and the Grenadines": {Lat: 12.984305, Lon: -61.287228},
	"Samoa":                            {Lat: -13.759029, Lon: -172.104629},
	"San Marino":                       {Lat: 43.94236, Lon: 12.457777},
	"Sao Tome and Principe":            {Lat: 0.18636, Lon: 6.613081},
	"Saudi Arabia":                     {Lat: 23.885942, Lon: 45.079162},
	"Senegal":                          {Lat: 14.497401, Lon: -14.452362},
	"Serbia":                           {Lat: 44.016521, Lon: 21.005859},
	"Seychelles":                       {Lat: -4.679574, Lon: 55.491977},
	"Sierra Leone":                     {Lat: 8.460555, Lon: -11.779889},
	"Singapore":                        {Lat: 1.352083, Lon: 103.819836},
	"Slovakia":                         {Lat: 48.669026, Lon: 19.699024},
	"Slovenia":                         {Lat: 46.151241, Lon: 14.995463},
	"Solomon Islands":                  {Lat: -9.64571, Lon: 160.156194},
	"Somalia":                          {Lat: 5.152149, Lon: 46.199616},
	"South Africa":                     {Lat: -30.559482, Lon: 22.937506},
	"South Korea":                      {Lat: 35.907757, Lon: 127.766922},
	"South Sudan":                      {Lat: 6.876991, Lon: 31.306978},
	"Spain":                            {Lat: 40.463667, Lon: -3.74922},
	"Sri Lanka":                        {Lat: 7.873054, Lon: 80.771797},
	"Sudan":                            {Lat: 12.862807, Lon: 30.217636},
	"Suriname":                         {Lat: 3.919305, Lon: -56.027783},
	"Sweden":                           {Lat: 60.128161, Lon: 18.643501},
	"Switzerland":                      {Lat: 46.818188, Lon: 8.227512},
	"Syria":                            {Lat: 34.802075, Lon: 38.996815},
	"Taiwan":                           {Lat: 23.69781, Lon: 120.960515},
	"Tajikistan":                       {Lat: 38.861034, Lon: 71.276093},
	"Tanzania":                         {Lat: -6.369028, Lon: 34.888822},
	"Thailand":                         {Lat: 15.870032, Lon: 100.992541},
	"Timor-Leste":                      {Lat: -8.874217, Lon: 125.727539},
	"Togo":                             {Lat: 8.619543, Lon: 0.824782},
	"Tonga":                            {Lat: -21.178986, Lon: -175.198242},
	"Trinidad and Tobago":              {Lat: 10.691803, Lon: -61.222503},
	"Tunisia":                          {Lat: 33.886917, Lon: 9.537499},
	"Turkey":                           {Lat: 38.963745, Lon: 35.243322},
	"Turkmenistan":                     {Lat: 38.969719, Lon: 59.556278},
	"Tuvalu":                           {Lat: -7.109535, Lon: 177.64933},
	"Uganda":                           {Lat: 1.373333, Lon: 32.290275},
	"Ukraine":                          {Lat: 48.379433, Lon: 31.16558},
	"United Arab Emirates":             {Lat: 23.424076, Lon: 53.847818},
	"United Kingdom":                   {Lat: 55.378051, Lon: -3.435973},
	"United States":                    {Lat: 37.09024, Lon: -95.712891},
	"Uruguay":                          {Lat: -32.522779, Lon: -55.765835},
	"Uzbekistan":                       {Lat: 41.377491, Lon: 64.585262},
	"Vanuatu":                          {Lat: -15.376706, Lon: 166.959158},
	"Vatican City":                     {Lat: 41.902916, Lon: 12.453389},
	"Venezuela":                        {Lat: 6.42375, Lon: -66.58973},
	"Vietnam":                          {Lat: 14.058324, Lon: 108.277199},
	"Yemen":                            {Lat: 15.552727, Lon: 48.516388},
	"Zambia":                           {Lat: -13.133897, Lon: 27.849332},
	"Zimbabwe":                         {Lat: -19.015438, Lon: 29.154857},
}

// placeAliases maps the spellings other datasets use onto the names
// countryCentroids keys on.
var placeAliases = map[string]string{
	"America":                  "United States",
	"Brunei Darussalam":        "Brunei",
	"Burma":                    "Myanmar",
	"Cabo Verde":               "Cape Verde",
	"Congo":                    "Republic of the Congo",
	"Congo (Brazzaville)":      "Republic of the Congo",
	"Congo (Kinshasa)":         "Democratic Republic of the Congo",
	"Cote d'Ivoire":            "Ivory Coast",
	"Czech Republic":           "Czechia",
	"DR Congo":                 "Democratic Republic of the Congo",
	"East Timor":               "Timor-Leste",
	"England":                  "United Kingdom",
	"Great Britain":            "United Kingdom",
	"Holland":                  "Netherlands",
	"Holy See":                 "Vatican City",
	"Iran (Islamic Republic of)": "Iran",
	"Korea, North":             "North Korea",
	"Korea, South":             "South Korea",
	"Macedonia":                "North Macedonia",
	"Mainland China":           "China",
	"Republic of Korea":        "South Korea",
	"Republic of Moldova":      "Moldova",
	"Russian Federation":       "Russia",
	"Swaziland":                "Eswatini",
	"Syrian Arab Republic":     "Syria",
	"Taiwan*":                  "Taiwan",
	"The Bahamas":              "Bahamas",
	"The Gambia":               "Gambia",
	"The Netherlands":          "Netherlands",
	"U.S.":                     "United States",
	"U.S.A.":                   "United States",
	"UAE":                      "United Arab Emirates",
	"UK":                       "United Kingdom",
	"US":                       "United States",
	"USA":                      "United States",
	"United States of America": "United States",
	"Viet Nam":                 "Vietnam",
}
