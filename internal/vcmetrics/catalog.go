package vcmetrics

// Visibility markers for catalog entries. An empty marker hides the
// column in that context; MarkerNumber shows the raw number;
// MarkerPercent shows the synthesized percentage column instead of the
// base column.
const (
	MarkerNumber  = "#"
	MarkerPercent = "%"
)

// CatalogEntry describes one known DRAGEN variant-calling metric: its
// key in the data, display title, visibility in the summary and detail
// table contexts, and a description shown as column help.
type CatalogEntry struct {
	ID          string
	Title       string
	InSummary   string
	InDetail    string
	Description string
}

// Catalog is the ordered list of known metrics. Order here is the
// display order of the generated table columns.
var Catalog = []CatalogEntry{
	{"Total", "Vars", MarkerNumber, MarkerNumber,
		"Total number of variants (SNPs + MNPs + INDELS)."},
	{"Reads Processed", "VC reads", "", "",
		"The number of reads used for variant calling, excluding any duplicate marked reads and reads falling outside of the target region"},
	{"Biallelic", "Biallelic", "", "",
		"Number of sites in a genome that contains two observed alleles, counting the reference as one, and therefore allowing for one variant allele"},
	{"Multiallelic", "Multiallelic", "", MarkerPercent,
		"Number of sites in the VCF that contain three or more observed alleles. The reference is counted as one, therefore allowing for two or more variant alleles"},
	{"SNPs", "SNPs", "", MarkerPercent,
		"Number of SNPs in the variant set. A variant is counted as an SNP when the reference, allele 1, and allele2 are all length 1"},
	{"Indels", "Indels", "", MarkerPercent,
		"Number of insetions and deletions in the variant set."},
	{"Insertions", "Ins", "", "", ""},
	{"Deletions", "Del", "", "", ""},
	{"Insertions (Hom)", "Hom ins", "", "",
		"Number of variants that contains homozygous insertions"},
	{"Insertions (Het)", "Het ins", "", "",
		"Number of variants where both alleles are insertions, but not homozygous"},
	{"Deletions (Hom)", "Hom del", "", "",
		"Number of variants that contains homozygous deletions"},
	{"Deletions (Het)", "Het del", "", "",
		"Number of variants where both alleles are deletion, but not homozygous"},
	{"Indels (Het)", "Het indel", "", "",
		"Number of variants where genotypes are either [insertion+deletion], [insertion+snp] or [deletion+snp]."},
	{"DeNovo SNPs", "DeNovo SNPs", "", "",
		"Number of DeNovo marked SNPs, with DQ > 0.05. Set the --qc-snp-denovo-quality-threshold option to the required threshold. The default is 0.05."},
	{"DeNovo INDELs", "DeNovo indel", "", "",
		"Number of DeNovo marked indels, with DQ > 0.05. Set the --qc-snp-denovo-quality-threshold option to the required threshold. The default is 0.05."},
	{"DeNovo MNPs", "DeNovo MNPs", "", "",
		"Number of DeNovo marked MNPs, with DQ > 0.05. Set the --qc-snp-denovo-quality-threshold option to the required threshold. The default is 0.05."},
	{"Chr X number of SNPs over genome", "ChrX SNP", "", "",
		"Number of SNPs in chromosome X (or in the intersection of chromosome X with the target region). If there was no alignment to either chromosome X, this metric shows as NA"},
	{"Chr Y number of SNPs over genome", "ChrY SNP", "", "",
		"Number of SNPs in chromosome Y (or in the intersection of chromosome Y with the target region). If there was no alignment to either chromosome Y, this metric shows as NA"},
	{"(Chr X SNPs)/(chr Y SNPs) ratio over genome", "X/Y SNP ratio", "", "",
		"Number of SNPs in chromosome X (or in the intersection of chromosome X with the target region) divided by the number of SNPs in chromosome Y (or in the intersection of chromosome Y with the target region). If there was no alignment to either chromosome X or chromosome Y, this metric shows as NA"},
	{"SNP Transitions", "SNP Ti", "", "",
		"Number of transitions - interchanges of two purines (A<->G) or two pyrimidines (C<->T)"},
	{"SNP Transversions", "SNP Tv", "", "",
		"Number of transversions - interchanges of purine and pyrimidine bases"},
	{"Ti/Tv ratio", "Ti/Tv", "", MarkerNumber,
		"Ti/Tv ratio: ratio of transitions to transitions."},
	{"Heterozygous", "Het", "", "",
		"Number of heterozygous variants"},
	{"Homozygous", "Hom", "", "",
		"Number of homozygous variants"},
	{"Het/Hom ratio", "Het/Hom", "", MarkerPercent,
		"Heterozygous/ homozygous ratio"},
	{"In dbSNP", "In dbSNP", "", MarkerPercent,
		"Number of variants detected that are present in the dbsnp reference file. If no dbsnp file is provided via the --bsnp option, then both the In dbSNP and Novel metrics show as NA."},
	{"Not in dbSNP", "Novel", "", "",
		"Number of all variants minus number of variants in dbSNP. If no dbsnp file is provided via the --bsnp option, then both the In dbSNP and Novel metrics show as NA."},
	{"Percent Callability", "Callability", "", MarkerNumber,
		"Available only in germline mode with gVCF output. The percentage of non-N reference positions having a PASSing genotype call. Multi-allelic variants are not counted. Deletions are counted for all the deleted reference positions only for homozygous calls. Only autosomes and chromosomes X, Y and M are considered."},
	{"Percent Autosome Callability", "Autosome callability", "", "",
		"Available only in germline mode with gVCF output. The percentage of non-N reference positions having a PASSing genotype call. Multi-allelic variants are not counted. Deletions are counted for all the deleted reference positions only for homozygous calls. Only autosomes are considered (for all chromosomes, see the Callability metric)."},
	{"Filtered vars", "Filtered", "", MarkerPercent,
		"Number of raw variants minus the number of PASSed variants"},
	{"Filtered SNPs", "Filt SNPs", "", "",
		"Number of raw SNPs minus the number of PASSed SNPs"},
	{"Filtered indels", "Filt indels", "", "",
		"Number of raw indels minus the number of PASSed indels"},
}
